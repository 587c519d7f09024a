package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/esbmc/vscode-esbmc/internal/catalog"
)

var optionsCmd = &cobra.Command{
	Use:   "options [section]",
	Short: "List the ESBMC options and the flags they produce",
	Long: `Lists every option of the catalog with its kind, default and flag usage,
grouped by section in the order flags are emitted. Pass a section name to
list only that section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sections := catalog.Sections()
		if len(args) == 1 {
			s, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown section '%s' (known: %v)", args[0], catalog.Names())
			}
			sections = []*catalog.Section{s}
		}

		for i, s := range sections {
			if i > 0 {
				output("")
			}
			output(s.Name + ":")
			for _, o := range s.Options() {
				output(fmt.Sprintf("  %-32s %-8s %-14s %s", o.Key, o.Kind, o.Default, o.Usage()))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
