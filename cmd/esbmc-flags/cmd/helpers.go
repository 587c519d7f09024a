package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/esbmc/vscode-esbmc/pkg/esbmcflags"
)

// stdout receives command output; tests replace it.
var stdout io.Writer = os.Stdout

// newClient builds a library client from the global flags.
func newClient() (*esbmcflags.Client, error) {
	opts := esbmcflags.Options{
		SettingsPaths: settingsPaths,
		NoInherit:     noInherit,
		Binary:        commandBinary,
		Logger:        logger,
	}
	if len(settingsPaths) == 0 {
		opts.WorkspaceRoot = workspaceRoot
	}
	return esbmcflags.New(opts)
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Fprintf(stdout, "  "+format+"\n", args...)
	}
}

// output prints a result line regardless of quiet mode.
func output(s string) {
	fmt.Fprintln(stdout, s)
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
