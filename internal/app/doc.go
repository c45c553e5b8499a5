// Package app provides the application context for sandman.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths    // Managed root layout
//	    Settings *config.Settings // Loaded settings file
//	    Tool     cabal.Tool       // External toolchain
//	    FS       system.FileSystem
//	    Journal  *audit.Logger    // Operation journal
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithTool(mockTool),
//	    app.WithFS(mockFS),
//	)
//
// # Available Options
//
//	WithPaths(paths)       // Custom path layout
//	WithSettings(settings) // Custom settings
//	WithTool(tool)         // Custom toolchain
//	WithFS(fs)             // Custom filesystem
//	WithJournal(journal)   // Custom journal
package app
