package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "sandman",
	Short: "Shared cabal sandbox manager",
	Long: `sandman manages cabal sandboxes from a central location.

Sandboxes live under ~/.sandman/sandboxes and are created, filled, and
destroyed by name. Their package databases can be mixed into the cabal
sandbox of the project in the current directory, so one built package
set serves many projects.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%s", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
