package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report unknown ESBMC settings and invalid values",
	Long: `Lints the resolved settings against the option catalog. Reports sections
and keys esbmc-flags does not know (usually typos) and values that violate
an option's contract. Exit 0 if the settings are clean; exit non-zero
otherwise. Suitable for CI pipelines.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Check(commandContext(cmd))
		if err != nil {
			return err
		}

		if result.Clean {
			info("All ESBMC settings are valid.")
			return nil
		}

		for _, f := range result.Unknown {
			info("  unknown   %s", f.Path())
			detail("%s", f.Message)
		}
		for _, f := range result.Invalid {
			info("  invalid   %s: %s", f.Path(), f.Message)
		}

		total := len(result.Unknown) + len(result.Invalid)
		return fmt.Errorf("check failed: %d problem(s) in ESBMC settings", total)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
