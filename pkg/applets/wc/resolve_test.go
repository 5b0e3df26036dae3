package wc_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-wc/pkg/applets/wc"
	"github.com/rcarmo/go-wc/pkg/core/logging"
	"github.com/rcarmo/go-wc/pkg/testutil"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestResolverStdin(t *testing.T) {
	t.Parallel()
	in := &closeTracker{Reader: strings.NewReader("from stdin")}
	r := &wc.Resolver{Stdin: in}

	rc, err := r.Open(wc.Stdin)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "from stdin", string(data))
	assert.False(t, in.closed, "stdin must stay open")
}

func TestResolverFile(t *testing.T) {
	t.Parallel()
	path := testutil.TempFile(t, "input.txt", "contents\n")
	r := &wc.Resolver{}

	rc, err := r.Open(path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contents\n", string(data))
}

func TestResolverErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r := &wc.Resolver{}

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		name := filepath.Join(dir, "nope.txt")
		rc, err := r.Open(name)
		require.Nil(t, rc)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, name+": "+syscall.ENOENT.Error(), err.Error())
	})
	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		rc, err := r.Open(dir)
		require.Nil(t, rc)
		require.ErrorIs(t, err, syscall.EISDIR)
		var rerr *wc.ResolveError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, dir, rerr.Name)
	})
}

func TestResolverStdinTerminal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		scenario   string
		isTerminal func(fd int) bool
		then       string
	}{
		{
			scenario:   "terminal",
			isTerminal: func(int) bool { return true },
			then:       "reading standard input from terminal",
		},
		{
			scenario:   "not a terminal",
			isTerminal: func(int) bool { return false },
		},
		{
			// a pipe is never a terminal for term.IsTerminal
			scenario: "default check on a pipe",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			pr, pw, err := os.Pipe()
			require.NoError(t, err)
			t.Cleanup(func() { _ = pr.Close() })
			require.NoError(t, pw.Close())

			var gotFd int
			check := tt.isTerminal
			if check != nil {
				check = func(fd int) bool {
					gotFd = fd
					return tt.isTerminal(fd)
				}
			}
			var buf bytes.Buffer
			r := &wc.Resolver{Stdin: pr, Log: logging.New(&buf, true), IsTerminal: check}

			rc, err := r.Open(wc.Stdin)
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Empty(t, data)

			if tt.isTerminal != nil {
				assert.Equal(t, int(pr.Fd()), gotFd)
			}
			if tt.then == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.then)
			}
		})
	}
}
