package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove mixed-in packages from the current project",
	Long: `Deletes the package registrations the current project's cabal database
gained from managed sandboxes, then rebuilds the database cache.
Packages installed directly into the project are left alone.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

var cleanProject string

func init() {
	cleanCmd.Flags().StringVar(&cleanProject, "project", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	project, err := projectRoot(cleanProject)
	if err != nil {
		return err
	}

	logInfo("Cleaning %s...", project)

	result, err := app.Default.Mixer().Clean(ctx, project)
	if err != nil {
		return err
	}

	if result.Planned == 0 {
		logInfo("Nothing to clean: no mixed-in packages found")
		return nil
	}

	displayPlan(result.Packages)
	logSuccess("Removed %d mixed-in packages", result.Removed)
	return nil
}
