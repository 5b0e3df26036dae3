// Command wc prints line, word, byte and character counts.
package main

import (
	"os"

	"github.com/rcarmo/go-wc/pkg/applets/wc"
	"github.com/rcarmo/go-wc/pkg/core"
)

func main() {
	os.Exit(wc.Run(core.DefaultStdio(), os.Args[1:]))
}
