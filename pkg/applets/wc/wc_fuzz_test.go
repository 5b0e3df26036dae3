package wc_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rcarmo/go-wc/pkg/applets/wc"
	"github.com/rcarmo/go-wc/pkg/core"
	"github.com/rcarmo/go-wc/pkg/testutil"
)

func FuzzWc(f *testing.F) {
	f.Add([]byte("sample input"))
	f.Add([]byte(""))
	f.Add([]byte("a\r\nb\r\n"))
	f.Add([]byte("\xff"))
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		data = testutil.ClampBytes(data, testutil.MaxFuzzBytes)
		dir := testutil.TempDirWithFiles(t, map[string]string{"input.txt": string(data)})
		out, _, code := testutil.RunAppletInDir(t, wc.Run, []string{"-c", "input.txt"}, "", dir)
		if !utf8.Valid(data) {
			if code != core.ExitFailure || out != "" {
				t.Fatalf("invalid input: code=%d out=%q", code, out)
			}
			return
		}
		if want := fmt.Sprintf("%8d input.txt\n", len(data)); out != want {
			t.Fatalf("output = %q, want %q", out, want)
		}
	})
}

// FuzzCount checks Count against independent computations of each field.
func FuzzCount(f *testing.F) {
	f.Add("I don't want the world.  I just want your half.\r\n")
	f.Add("")
	f.Add("one\ntwo\n\nthree")
	f.Add("  \t\n")
	f.Add("héllo　wörld")
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, s string) {
		s = testutil.ClampString(s, testutil.MaxFuzzBytes)
		got, err := wc.Count(strings.NewReader(s))
		if !utf8.ValidString(s) {
			if err == nil {
				t.Fatalf("Count(%q): expected error", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("Count(%q): %v", s, err)
		}

		lines := uint64(strings.Count(s, "\n"))
		if s != "" && !strings.HasSuffix(s, "\n") {
			lines++
		}
		want := wc.Tally{
			Lines: lines,
			Words: uint64(len(strings.Fields(s))),
			Bytes: uint64(len(s)),
			Chars: uint64(utf8.RuneCountInString(s)),
		}
		if got != want {
			t.Fatalf("Count(%q) = %+v, want %+v", s, got, want)
		}
	})
}
