// Package cabal drives the external cabal and ghc-pkg executables.
// The Tool interface covers exactly the operations sandman delegates to
// the toolchain and enables comprehensive testing through mocking.
package cabal

import (
	"context"

	"github.com/bonomali/sandman/internal/pkgdb"
)

// Tool is the interface to the external Haskell packaging toolchain.
type Tool interface {
	// Name returns the toolchain identifier (the cabal command in use).
	Name() string

	// SandboxInit provisions a cabal sandbox rooted at dir. After it
	// returns, dir contains a cabal.sandbox.config naming the sandbox's
	// package database.
	SandboxInit(ctx context.Context, dir string) error

	// Install builds and installs packages into the sandbox rooted at
	// dir. Build output streams to the user's terminal.
	Install(ctx context.Context, dir string, packages []string) error

	// Packages enumerates the package database at dbDir, in the
	// toolchain's own order.
	Packages(ctx context.Context, dbDir string) ([]pkgdb.Package, error)

	// Recache rebuilds the cache of the package database at dbDir.
	Recache(ctx context.Context, dbDir string) error
}
