package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/cabal"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the sandman environment",
	Long: `Shows the resolved managed root and settings, and checks that the
external tools sandman drives are available.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	p := paths()
	settings := app.Default.Settings

	fmt.Printf("Managed root: %s\n", p.Root)
	fmt.Printf("Sandboxes: %s\n", p.SandboxesDir)

	if _, err := os.Stat(p.SettingsFile); err == nil {
		fmt.Printf("Settings: %s\n", p.SettingsFile)
	} else {
		fmt.Printf("Settings: %s (not present, using defaults)\n", p.SettingsFile)
	}

	fmt.Println()

	fmt.Println("External tools:")
	for _, probe := range cabal.Detect(ctx, settings.Cabal, settings.GHCPkg) {
		if probe.Found() {
			fmt.Printf("  ✓ %s: %s (%s)\n", probe.Command, probe.Version, probe.Path)
		} else {
			logWarning("  ✗ %s: %v", probe.Command, probe.Err)
		}
	}

	return nil
}
