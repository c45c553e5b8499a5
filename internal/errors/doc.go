// Package errors provides typed errors with exit codes for sandman.
//
// # Error Types
//
// SandmanError is the base error type that wraps an error with an exit code:
//
//	type SandmanError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitSandboxNotFound = 2  // Sandbox does not exist
//	ExitSandboxExists   = 3  // Sandbox name already in use
//	ExitConfigNotFound  = 4  // cabal.sandbox.config missing
//	ExitPackageDb       = 5  // Package database path undetermined
//	ExitToolFailed      = 6  // External tool invocation failed
//	ExitCopyFailed      = 7  // Package registration copy failed
//	ExitDeleteFailed    = 8  // Package registration delete failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.SandboxNotFound("deeplearning")
//	errors.SandboxAlreadyExists("web")
//	errors.ConfigNotFound(path, err)
//	errors.ToolFailure("ghc-pkg recache", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
