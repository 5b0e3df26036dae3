package wc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Count when a line does not decode as UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

const readBufferSize = 64 * 1024

// Tally holds the counts for one input or a running total.
// Counters are not checked for overflow.
type Tally struct {
	Lines uint64
	Words uint64
	Bytes uint64
	Chars uint64
}

// Add returns the element-wise sum of t and o.
func (t Tally) Add(o Tally) Tally {
	return Tally{
		Lines: t.Lines + o.Lines,
		Words: t.Words + o.Words,
		Bytes: t.Bytes + o.Bytes,
		Chars: t.Chars + o.Chars,
	}
}

// Count reads r one line at a time and tallies its contents. A line is
// everything up to and including '\n', or the trailing bytes at EOF.
// On error the partial tally is discarded.
func Count(r io.Reader) (Tally, error) {
	var (
		t      Tally
		long   []byte
		offset uint64
	)
	br := bufio.NewReaderSize(r, readBufferSize)
	for {
		line, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			long = append(long, line...)
			continue
		}
		if len(long) > 0 {
			long = append(long, line...)
			line = long
		}
		if len(line) > 0 {
			if lerr := t.addLine(line, offset); lerr != nil {
				return Tally{}, lerr
			}
			offset += uint64(len(line))
		}
		long = long[:0]

		if err != nil {
			if err == io.EOF {
				return t, nil
			}
			return Tally{}, err
		}
	}
}

func (t *Tally) addLine(line []byte, offset uint64) error {
	var words, chars uint64
	inWord := false
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, offset+uint64(i))
		}
		chars++
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
		i += size
	}

	t.Lines++
	t.Bytes += uint64(len(line))
	t.Words += words
	t.Chars += chars
	return nil
}
