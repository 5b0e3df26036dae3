package wc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rcarmo/go-wc/pkg/core"
)

const fieldWidth = 8

// OutcomeKind classifies the result of processing one input.
type OutcomeKind int

const (
	Counted OutcomeKind = iota
	ResolveFailed
	CountFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Counted:
		return "counted"
	case ResolveFailed:
		return "resolve failed"
	case CountFailed:
		return "count failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of processing a single input.
// Tally is only meaningful when Kind is Counted.
type Outcome struct {
	Name  string
	Kind  OutcomeKind
	Tally Tally
	Err   error
}

// Summary collects every Outcome of a report and the total of the
// successful ones.
type Summary struct {
	Outcomes []Outcome
	Total    Tally
}

// Failed reports whether any input could not be resolved or counted.
func (s Summary) Failed() bool {
	for _, o := range s.Outcomes {
		if o.Kind != Counted {
			return true
		}
	}
	return false
}

// FormatField right-aligns v in a fixed-width column, or returns "" when
// the field is not shown.
func FormatField(v uint64, show bool) string {
	if !show {
		return ""
	}
	return fmt.Sprintf("%*d", fieldWidth, v)
}

// FormatTally renders the enabled fields of t in the order lines, words,
// bytes, chars.
func FormatTally(t Tally, cfg *Config) string {
	return FormatField(t.Lines, cfg.Lines) +
		FormatField(t.Words, cfg.Words) +
		FormatField(t.Bytes, cfg.Bytes) +
		FormatField(t.Chars, cfg.Chars)
}

// Report drives the Resolver and Count over every configured input.
type Report struct {
	Config   *Config
	Resolver *Resolver
	Stdio    *core.Stdio
	Log      *zap.Logger
}

// Run processes the inputs in order. A failed input is reported on stderr
// and skipped; it never stops the run. A totals line is printed whenever
// more than one input was configured.
func (r *Report) Run() Summary {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	var sum Summary
	for _, name := range r.Config.Files {
		o := r.process(name)
		sum.Outcomes = append(sum.Outcomes, o)
		if o.Kind != Counted {
			log.Debug("input failed",
				zap.String("input", name),
				zap.Stringer("kind", o.Kind),
				zap.Error(o.Err))
			r.Stdio.Errorf("wc: %v\n", o.Err)
			continue
		}

		log.Debug("input counted",
			zap.String("input", name),
			zap.Uint64("lines", o.Tally.Lines),
			zap.Uint64("words", o.Tally.Words),
			zap.Uint64("bytes", o.Tally.Bytes),
			zap.Uint64("chars", o.Tally.Chars))
		line := FormatTally(o.Tally, r.Config)
		if name != Stdin {
			line += " " + name
		}
		r.Stdio.Println(line)
		sum.Total = sum.Total.Add(o.Tally)
	}

	if len(r.Config.Files) > 1 {
		r.Stdio.Println(FormatTally(sum.Total, r.Config) + " total")
	}
	return sum
}

func (r *Report) process(name string) Outcome {
	rc, err := r.Resolver.Open(name)
	if err != nil {
		return Outcome{Name: name, Kind: ResolveFailed, Err: err}
	}
	defer rc.Close()

	t, err := Count(rc)
	if err != nil {
		return Outcome{Name: name, Kind: CountFailed, Err: fmt.Errorf("%s: %w", name, err)}
	}
	return Outcome{Name: name, Kind: Counted, Tally: t}
}
