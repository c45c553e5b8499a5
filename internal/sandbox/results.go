package sandbox

import (
	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/logging"
)

// CreateResult holds the result of a successful sandbox creation.
type CreateResult struct {
	// Name is the sandbox name.
	Name string

	// Root is the provisioned sandbox directory.
	Root string
}

// MixResult describes a mix run, including partially completed ones.
type MixResult struct {
	// Sandbox is the source sandbox name.
	Sandbox string

	// SourceDb is the sandbox's package database dir.
	SourceDb string

	// TargetDb is the project's package database dir.
	TargetDb string

	// Planned is how many registrations the plan contained.
	Planned int

	// Packages holds the planned package identities, in plan order.
	Packages []string

	// Copied is how many registrations were copied before the run
	// finished or stopped.
	Copied int

	// Recached reports whether the target database's cache was rebuilt.
	Recached bool
}

// CleanResult describes a clean run, including partially completed ones.
type CleanResult struct {
	// TargetDb is the project's package database dir.
	TargetDb string

	// Planned is how many foreign registrations the plan contained.
	Planned int

	// Packages holds the planned package identities, in plan order.
	Packages []string

	// Removed is how many registrations were deleted before the run
	// finished or stopped.
	Removed int

	// Recached reports whether the target database's cache was rebuilt.
	Recached bool
}

// recordEvent appends a journal entry. Journal trouble is reported but
// never fails the operation that produced the event.
func recordEvent(journal *audit.Logger, eventType audit.EventType, sandbox, details string) {
	if journal == nil {
		return
	}
	if err := journal.LogEvent(eventType, sandbox, details); err != nil {
		logging.Warn("failed to record event", "type", string(eventType), "error", err)
	}
}
