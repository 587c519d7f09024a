package cmd

import (
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Print the esbmc flags for the resolved settings",
	Long: `Loads the settings chain (user settings, then the workspace's
.vscode/settings.json, or the files given with --settings), validates every
ESBMC option and prints the flags that differ from the defaults on one line.
An empty line means every option is at its default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		flags, err := client.Compile(commandContext(cmd))
		if err != nil {
			return err
		}

		output(flags)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
