package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	settingsPaths []string
	workspaceRoot string
	noInherit     bool
	verbose       bool
	quiet         bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "esbmc-flags"})

var rootCmd = &cobra.Command{
	Use:   "esbmc-flags",
	Short: "Compile ESBMC settings into esbmc command-line flags",
	Long: `esbmc-flags reads the ESBMC settings of a VS Code user and workspace
(settings.json, or explicit JSONC, YAML and TOML files), validates every
option against its documented contract and prints the esbmc flags that
differ from the defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case verbose:
			logger.SetLevel(log.DebugLevel)
		case quiet:
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.WarnLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "esbmc-flags %s\n", version)
		fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		fmt.Fprintf(stdout, "  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&settingsPaths, "settings", nil, "explicit settings file, repeatable (disables discovery)")
	rootCmd.PersistentFlags().StringVar(&workspaceRoot, "workspace", ".", "workspace folder containing .vscode/settings.json")
	rootCmd.PersistentFlags().BoolVar(&noInherit, "no-inherit", false, "ignore the VS Code user settings")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		errorf("%v", err)
		return err
	}
	return nil
}
