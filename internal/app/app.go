// Package app provides the application context for sandman.
// It allows dependency injection for testing.
package app

import (
	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/cabal"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/sandbox"
	"github.com/bonomali/sandman/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the managed root layout
	Paths *config.Paths

	// Settings is the loaded settings file
	Settings *config.Settings

	// Tool is the external toolchain
	Tool cabal.Tool

	// FS is the filesystem in use
	FS system.FileSystem

	// Journal is the operation journal
	Journal *audit.Logger
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithSettings sets custom settings
func WithSettings(settings *config.Settings) Option {
	return func(a *App) {
		a.Settings = settings
	}
}

// WithTool sets a custom toolchain
func WithTool(tool cabal.Tool) Option {
	return func(a *App) {
		a.Tool = tool
	}
}

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithJournal sets a custom journal
func WithJournal(journal *audit.Logger) Option {
	return func(a *App) {
		a.Journal = journal
	}
}

// New creates a new App with the given options. Dependencies not
// provided are built from the settings file under the default managed
// root; a root override in the settings file re-roots the managed tree
// unless the caller supplied explicit paths.
func New(opts ...Option) *App {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	customPaths := app.Paths != nil
	if !customPaths {
		paths, err := config.DefaultPaths()
		if err != nil {
			logging.Warn("failed to resolve home directory, using relative root", "error", err)
			paths = config.NewPaths(config.RootDirName)
		}
		app.Paths = paths
	}

	if app.Settings == nil {
		settings, err := config.LoadSettings(app.Paths.SettingsFile)
		if err != nil {
			logging.Warn("failed to load settings, using defaults", "error", err)
			settings = config.DefaultSettings()
		}
		app.Settings = settings
	}

	if !customPaths && app.Settings.Root != "" {
		app.Paths = config.NewPaths(app.Settings.Root)
	}

	if app.Tool == nil {
		app.Tool = cabal.New(app.Settings.Cabal, app.Settings.GHCPkg)
	}
	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Journal == nil {
		app.Journal = audit.NewLogger(app.Paths.EventLog)
	}

	return app
}

// Store returns a sandbox store using the app's dependencies
func (a *App) Store() *sandbox.Store {
	return sandbox.NewStore(a.Paths, a.FS)
}

// Creator returns a sandbox creator using the app's dependencies
func (a *App) Creator() *sandbox.Creator {
	return sandbox.NewCreator(a.Paths, a.Tool, a.FS, a.Journal)
}

// Destroyer returns a sandbox destroyer using the app's dependencies
func (a *App) Destroyer() *sandbox.Destroyer {
	return sandbox.NewDestroyer(a.Paths, a.FS, a.Journal)
}

// Installer returns a package installer using the app's dependencies
func (a *App) Installer() *sandbox.Installer {
	return sandbox.NewInstaller(a.Paths, a.Tool, a.FS, a.Journal)
}

// Mixer returns a mixer using the app's dependencies
func (a *App) Mixer() *sandbox.Mixer {
	return sandbox.NewMixer(a.Paths, a.Tool, a.FS, a.Journal)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
