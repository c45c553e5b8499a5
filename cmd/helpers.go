package cmd

import (
	"context"
	"os"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/pkgdb"
	"github.com/bonomali/sandman/internal/sandbox"
)

// paths returns the application paths.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// loadSandbox resolves a named sandbox or returns a SandboxNotFound error.
func loadSandbox(name string) (*sandbox.Sandbox, error) {
	return app.Default.Store().Get(name)
}

// listSandboxes lists the managed sandboxes.
func listSandboxes() ([]sandbox.Sandbox, error) {
	return app.Default.Store().List()
}

// projectRoot resolves the project directory for mix and clean: the
// --project flag value when set, the working directory otherwise.
func projectRoot(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to resolve working directory", err)
	}
	return dir, nil
}

// countPackages enumerates the database under root and returns the
// number of registrations, or a negative count when the database cannot
// be read.
func countPackages(ctx context.Context, root string) int {
	db, err := pkgdb.LocateDb(app.Default.FS, root)
	if err != nil {
		return -1
	}
	packages, err := app.Default.Tool.Packages(ctx, db)
	if err != nil {
		return -1
	}
	return len(packages)
}
