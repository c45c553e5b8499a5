package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/sandbox"
	"github.com/bonomali/sandman/internal/tui"
)

var mixCmd = &cobra.Command{
	Use:   "mix [name]",
	Short: "Mix a sandbox's packages into the current project",
	Long: `Copies the package registrations the current project lacks from the
named sandbox into the project's cabal package database, then rebuilds
the database cache. Packages the project already has are never touched.

Without a name, opens an interactive picker listing the managed
sandboxes. Use arrow keys or j/k to navigate, / to filter, Enter to
mix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMix,
}

var mixProject string

func init() {
	mixCmd.Flags().StringVar(&mixProject, "project", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(mixCmd)
}

func runMix(cmd *cobra.Command, args []string) error {
	project, err := projectRoot(mixProject)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return mixInto(args[0], project)
	}
	return pickAndMix(project)
}

func mixInto(name, project string) error {
	ctx := context.Background()

	logInfo("Mixing %s into %s...", name, project)

	result, err := app.Default.Mixer().Mix(ctx, name, project)
	if err != nil {
		return err
	}

	if result.Planned == 0 {
		logInfo("Nothing to mix: the project already has every package from %s", name)
		return nil
	}

	displayPlan(result.Packages)
	logSuccess("Mixed %d packages from %s", result.Copied, name)
	return nil
}

func pickAndMix(project string) error {
	ctx := context.Background()

	logging.Debug("picker mode started")

	sandboxes, err := listSandboxes()
	if err != nil {
		return fmt.Errorf("failed to list sandboxes: %w", err)
	}

	if len(sandboxes) == 0 {
		logInfo("No sandboxes found. Create one with: sandman new <name>")
		return nil
	}

	result, err := tui.RunPicker(pickerEntries(ctx, sandboxes))
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionMix:
		if result.Sandbox != "" {
			return mixInto(result.Sandbox, project)
		}

	case tui.ActionNew:
		fmt.Println("\nTo create a new sandbox, run:")
		fmt.Println("  sandman new <name>")

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}

func pickerEntries(ctx context.Context, sandboxes []sandbox.Sandbox) []tui.Entry {
	entries := make([]tui.Entry, len(sandboxes))
	for i, sb := range sandboxes {
		entries[i] = tui.Entry{
			Name:     sb.Name,
			Root:     sb.Root,
			Packages: countPackages(ctx, sb.Root),
		}
	}
	return entries
}

// displayPlan lists the planned identities when --verbose is set.
func displayPlan(ids []string) {
	if !verbose {
		return
	}
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
}
