//go:build linux

package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel f will be read front to back.
// Failure only loses the readahead hint.
func adviseSequential(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
