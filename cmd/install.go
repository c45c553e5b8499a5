package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/logging"
)

var installCmd = &cobra.Command{
	Use:   "install <name> <package>...",
	Short: "Install packages into a sandbox",
	Long: `Runs "cabal install" inside the named sandbox. Build output streams to
the terminal; a failed build leaves whatever cabal completed in place.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	name := args[0]
	packages := args[1:]
	ctx := context.Background()

	logging.Debug("installing packages", "sandbox", name, "packages", strings.Join(packages, " "))

	logInfo("Installing %s into %s...", strings.Join(packages, " "), name)

	if err := app.Default.Installer().Install(ctx, name, packages); err != nil {
		return err
	}

	logSuccess("Installed %d packages into %s", len(packages), name)
	return nil
}
