// Package logging provides logging utilities for sandman.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("running", "cmd", cmdline)
//	logging.Warn("unreadable package db", "sandbox", name, "err", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Nothing to mix; project already has every package")
//	logging.UserSuccess("Sandbox %s created", name)
//	logging.UserWarning("Skipping %s: %v", name, err)
//	logging.UserError("Failed to destroy sandbox: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
