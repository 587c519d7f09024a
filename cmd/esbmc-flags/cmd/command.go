package cmd

import (
	"github.com/spf13/cobra"
)

var commandBinary string

var commandCmd = &cobra.Command{
	Use:   "command <file>",
	Short: "Print the esbmc command line for a source file",
	Long: `Prints "esbmc <file> <flags>" for a C, C++, Solidity or Jimple source file.
The command is only printed, never run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		line, err := client.CommandLine(commandContext(cmd), args[0])
		if err != nil {
			return err
		}

		output(line)
		return nil
	},
}

func init() {
	commandCmd.Flags().StringVar(&commandBinary, "esbmc", "esbmc", "esbmc executable to print")
	rootCmd.AddCommand(commandCmd)
}
