// Package tui provides terminal user interface components for sandman.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces, primarily the sandbox picker behind a bare "sandman mix".
//
// # Sandbox Picker
//
// The picker displays the managed sandboxes and allows selection:
//
//	result, err := tui.RunPicker(entries)
//	switch result.Action {
//	case tui.ActionMix:
//	    // Mix result.Sandbox into the current project
//	case tui.ActionNew:
//	    // Show how to create a sandbox
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - Lists all sandboxes with package counts and roots
//   - Keyboard navigation (j/k or arrows), / to filter
//   - Quick actions: Enter (mix), n (new), q (quit)
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
