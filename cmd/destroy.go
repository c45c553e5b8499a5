package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/logging"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy <name>",
	Short: "Delete a sandbox",
	Long: `Deletes a sandbox and everything inside it.

Projects that mixed packages from the sandbox keep their copied
registrations; run "sandman clean" inside them to drop the stale
entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runDestroy,
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, args []string) error {
	name := args[0]

	logging.Debug("removing sandbox", "name", name)

	logInfo("Removing sandbox %s...", name)

	if err := app.Default.Destroyer().Destroy(name); err != nil {
		return err
	}

	logSuccess("Removed sandbox %s", name)
	return nil
}
