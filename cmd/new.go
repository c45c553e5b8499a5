package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/logging"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new sandbox",
	Long: `Creates a named sandbox directory under the managed root and
initializes a cabal sandbox inside it.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := context.Background()

	logging.Debug("starting sandbox creation", "name", name)

	logInfo("Creating sandbox %s...", name)

	result, err := app.Default.Creator().Create(ctx, name)
	if err != nil {
		return err
	}

	logSuccess("Sandbox %s created", name)
	fmt.Printf("  Root: %s\n", result.Root)
	fmt.Printf("  Install packages: sandman install %s <package>...\n", name)

	return nil
}
