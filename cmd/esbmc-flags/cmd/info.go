package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the settings chain and the fingerprint of the merged settings",
	Long: `Displays the esbmc-flags version, every settings file considered (with its
scope and whether it was loaded), the fingerprint the compiler keys its
cache on, and how many options of each section are overridden.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Info(commandContext(cmd), version)
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "esbmc-flags %s\n", result.Version)
		fmt.Fprintln(stdout, "  settings chain:")
		if len(result.Chain) == 0 {
			fmt.Fprintln(stdout, "    (none)")
		}
		for _, layer := range result.Chain {
			status := "not found"
			if layer.Loaded {
				status = "loaded"
			}
			fmt.Fprintf(stdout, "    %-10s %s (%s)\n", layer.Scope+":", layer.Path, status)
		}
		fmt.Fprintf(stdout, "  fingerprint:   %s\n", result.Fingerprint)

		fmt.Fprintln(stdout, "\nSections:")
		for _, s := range result.Sections {
			fmt.Fprintf(stdout, "  %-20s %2d/%d overridden\n", s.Name, s.Overridden, s.Options)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
