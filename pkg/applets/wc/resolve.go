package wc

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rcarmo/go-wc/pkg/core/fs"
)

// Stdin is the input identifier that selects standard input.
const Stdin = "-"

// ResolveError reports an input that could not be opened.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string { return e.Name + ": " + e.Err.Error() }

func (e *ResolveError) Unwrap() error { return e.Err }

func newResolveError(name string, err error) *ResolveError {
	// The name is already carried by the ResolveError.
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &ResolveError{Name: name, Err: err}
}

// Resolver maps input identifiers to readable streams.
type Resolver struct {
	Stdin io.Reader
	Log   *zap.Logger

	// IsTerminal reports whether fd is a terminal. Defaults to term.IsTerminal.
	IsTerminal func(fd int) bool
}

// Open returns a stream for name. Standard input is returned with a no-op
// Close so that releasing it does not close the process's stdin. Open does
// not read from the stream.
func (r *Resolver) Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		if f, ok := r.Stdin.(*os.File); ok && r.isTerminal(int(f.Fd())) {
			r.logger().Debug("reading standard input from terminal")
		}
		return io.NopCloser(r.Stdin), nil
	}

	f, err := fs.Open(name)
	if err != nil {
		return nil, newResolveError(name, err)
	}
	return f, nil
}

func (r *Resolver) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r *Resolver) isTerminal(fd int) bool {
	if r.IsTerminal == nil {
		return term.IsTerminal(fd)
	}
	return r.IsTerminal(fd)
}
