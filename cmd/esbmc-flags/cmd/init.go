package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/esbmc/vscode-esbmc/internal/config"
)

var initForce bool

// initTemplate is the default .vscode/settings.json scaffold. Every active
// entry is set to its default, so it compiles to no flags until edited.
const initTemplate = `{
	// ESBMC settings. Run 'esbmc-flags options' for the full list.

	// Bounded model checking
	"esbmc.bmc.mainFunction": "main",
	"esbmc.bmc.unwind": -1,
	// "esbmc.bmc.incrementalBmc": true,

	// Safety properties
	"esbmc.propertyChecking.properties.overflowAndUnderflow": false,
	"esbmc.propertyChecking.properties.memoryLeak": false,

	// k-induction
	"esbmc.kinduction.prove": false,
	// "esbmc.kinduction.iterationMax": -1,

	// SMT solver: boolector, z3, mathsat, cvc, yices, bitwuzla or custom
	"esbmc.solver.smtSolver": "boolector",
	// "esbmc.solver.customSmtSolverPath": "${userHome}/bin/solver",

	// Counterexample trace
	"esbmc.trace.options": {
		"quiet": false
	},
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .vscode/settings.json with ESBMC settings",
	Long: `Creates .vscode/settings.json in the workspace folder with a commented
template of common ESBMC options, all set to their defaults.

Use --force to overwrite an existing settings file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := config.WorkspaceSettingsPath(workspaceRoot)

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing settings: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the options you want to change")
		info("  2. Run 'esbmc-flags check' to validate them")
		info("  3. Run 'esbmc-flags command <file>' to see the esbmc invocation")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing settings file")
	rootCmd.AddCommand(initCmd)
}
