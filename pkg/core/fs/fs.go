// Package fs opens applet inputs.
package fs

import (
	"os"
	"syscall"
)

// Open opens path for reading. Directories are rejected here with EISDIR
// rather than failing on the first read.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, &os.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	adviseSequential(f)
	return f, nil
}
