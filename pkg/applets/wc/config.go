package wc

import (
	"errors"

	"github.com/spf13/pflag"
)

// ErrBytesAndChars is returned by Validate when both byte and character
// counts are requested.
var ErrBytesAndChars = errors.New("options --bytes and --chars are mutually exclusive")

// Config holds the resolved wc options.
type Config struct {
	Files []string

	Lines bool // -l: show line count
	Words bool // -w: show word count
	Bytes bool // -c: show byte count
	Chars bool // -m: show character count

	Verbose bool // -v: debug logging on stderr
}

// BindFlags registers the wc flags on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Lines, "lines", "l", false, "print the line counts")
	fs.BoolVarP(&c.Words, "words", "w", false, "print the word counts")
	fs.BoolVarP(&c.Bytes, "bytes", "c", false, "print the byte counts")
	fs.BoolVarP(&c.Chars, "chars", "m", false, "print the character counts")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "log per-input details to standard error")
}

// Validate rejects option combinations that cannot be displayed.
func (c *Config) Validate() error {
	if c.Bytes && c.Chars {
		return ErrBytesAndChars
	}
	return nil
}

// Resolve fills in defaults: lines, words and bytes when no count was
// requested, and standard input when no file was given.
func (c *Config) Resolve() {
	if !c.Lines && !c.Words && !c.Bytes && !c.Chars {
		c.Lines = true
		c.Words = true
		c.Bytes = true
	}
	if len(c.Files) == 0 {
		c.Files = []string{Stdin}
	}
}
