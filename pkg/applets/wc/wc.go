// Package wc implements the wc (word count) command.
package wc

import (
	"github.com/spf13/cobra"

	"github.com/rcarmo/go-wc/pkg/core"
	"github.com/rcarmo/go-wc/pkg/core/logging"
)

const version = "0.1.0"

// Run executes the wc command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}

	cfg := &Config{}
	exitCode := core.ExitSuccess
	cmd := newCommand(stdio, cfg, &exitCode)
	cmd.SetArgs(shieldCompletionRequest(args))
	if err := cmd.Execute(); err != nil {
		return core.UsageError(stdio, "wc", err.Error())
	}
	return exitCode
}

func newCommand(stdio *core.Stdio, cfg *Config, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wc [FILE]...",
		Short: "Print line, word, and byte counts for each FILE",
		Long: `Print line, word, and byte counts for each FILE, and a total line if
more than one FILE is specified. With no FILE, or when FILE is -, read
standard input.`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Files = args
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.Resolve()

			log := logging.New(stdio.Err, cfg.Verbose)
			defer func() { _ = log.Sync() }()

			report := &Report{
				Config:   cfg,
				Resolver: &Resolver{Stdin: stdio.In, Log: log},
				Stdio:    stdio,
				Log:      log,
			}
			if report.Run().Failed() {
				*exitCode = core.ExitFailure
			}
			return nil
		},
	}
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// shieldCompletionRequest moves the inputs behind "--" when the first one
// is named like cobra's hidden completion command, which cobra would
// otherwise dispatch to. Every wc flag is boolean, so flags and inputs can
// be split without looking at values.
func shieldCompletionRequest(args []string) []string {
	var flags, files []string
	for i, arg := range args {
		if arg == "--" {
			files = append(files, args[i+1:]...)
			break
		}
		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)
		} else {
			files = append(files, arg)
		}
	}
	if len(files) == 0 ||
		(files[0] != cobra.ShellCompRequestCmd && files[0] != cobra.ShellCompNoDescRequestCmd) {
		return args
	}
	out := make([]string, 0, len(flags)+1+len(files))
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, files...)
}
