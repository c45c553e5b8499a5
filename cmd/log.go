package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/audit"
)

var logCmd = &cobra.Command{
	Use:   "log [name]",
	Short: "Display the operation journal",
	Long: `Shows the journal of completed operations: creations, destructions,
installs, mixes, and cleans. With a sandbox name, only that sandbox's
events are shown. With --json, events are printed as JSON lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	journal := app.Default.Journal

	var events []audit.Event
	var err error
	if len(args) == 1 {
		events, err = journal.EventsFor(args[0])
	} else {
		events, err = journal.Events()
	}
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(events) == 0 {
		logInfo("No events recorded")
		return nil
	}

	for _, e := range events {
		if jsonOutput {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Println(string(data))
		} else {
			ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			if e.Details != "" {
				fmt.Printf("[%s] %-8s %s (%s)\n", ts, e.Type, e.Sandbox, e.Details)
			} else {
				fmt.Printf("[%s] %-8s %s\n", ts, e.Type, e.Sandbox)
			}
		}
	}

	return nil
}
