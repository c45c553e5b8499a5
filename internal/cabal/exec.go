package cabal

import (
	"context"

	"github.com/kballard/go-shellquote"

	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/pkgdb"
	"github.com/bonomali/sandman/internal/system"
)

// Default executable names, used when settings name no others.
const (
	DefaultCabalCommand  = "cabal"
	DefaultGHCPkgCommand = "ghc-pkg"
)

// ExecTool implements Tool by invoking the cabal and ghc-pkg
// executables through the system command executor.
type ExecTool struct {
	// Cabal is the cabal executable to invoke.
	Cabal string
	// GHCPkg is the ghc-pkg executable to invoke.
	GHCPkg string

	exec system.CommandExecutor
	fs   system.FileSystem
}

var _ Tool = (*ExecTool)(nil)

// New creates an ExecTool invoking the given executables. Empty names
// fall back to the conventional commands resolved from PATH.
func New(cabalCmd, ghcPkgCmd string) *ExecTool {
	if cabalCmd == "" {
		cabalCmd = DefaultCabalCommand
	}
	if ghcPkgCmd == "" {
		ghcPkgCmd = DefaultGHCPkgCommand
	}
	return &ExecTool{Cabal: cabalCmd, GHCPkg: ghcPkgCmd}
}

// Name returns the cabal command in use.
func (t *ExecTool) Name() string {
	return t.Cabal
}

// SandboxInit runs "cabal sandbox init" inside dir so the sandbox and
// its package database are provisioned in place.
func (t *ExecTool) SandboxInit(ctx context.Context, dir string) error {
	_, err := t.run(ctx, dir, t.Cabal, "sandbox", "init", "--sandbox", ".")
	if err != nil {
		return errors.ToolFailure(t.Cabal+" sandbox", err)
	}
	return nil
}

// Install runs "cabal install" inside dir with the build attached to
// the user's terminal, so progress and compiler output stay visible.
func (t *ExecTool) Install(ctx context.Context, dir string, packages []string) error {
	args := append([]string{"install"}, packages...)
	logging.Debug("executing command", "cmd", t.Cabal, "args", shellquote.Join(args...), "dir", dir)
	if err := t.executor().ExecuteInteractive(ctx, dir, t.Cabal, args...); err != nil {
		return errors.ToolFailure(t.Cabal+" install", err)
	}
	return nil
}

// Packages enumerates the database at dbDir via "ghc-pkg dump".
//
// ghc-pkg dumps the entire database stack, not just the database it
// was pointed at. Records registered in other databases have no conf
// file under dbDir, so those are filtered out here.
func (t *ExecTool) Packages(ctx context.Context, dbDir string) ([]pkgdb.Package, error) {
	out, err := t.run(ctx, "", t.GHCPkg, "dump", "--no-user-package-db", "--package-db="+dbDir)
	if err != nil {
		return nil, errors.ToolFailure(t.GHCPkg+" dump", err)
	}
	records := pkgdb.ParseDump(dbDir, out)
	kept := records[:0]
	for _, p := range records {
		if t.filesystem().Exists(p.Conf) {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// Recache rebuilds the package cache of the database at dbDir via
// "ghc-pkg recache".
func (t *ExecTool) Recache(ctx context.Context, dbDir string) error {
	_, err := t.run(ctx, "", t.GHCPkg, "recache", "--package-db="+dbDir)
	if err != nil {
		return errors.ToolFailure(t.GHCPkg+" recache", err)
	}
	return nil
}

func (t *ExecTool) run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	logging.Debug("executing command", "cmd", name, "args", shellquote.Join(args...), "dir", dir)
	return t.executor().Execute(ctx, dir, name, args...)
}

func (t *ExecTool) executor() system.CommandExecutor {
	if t.exec != nil {
		return t.exec
	}
	return system.DefaultExecutor()
}

func (t *ExecTool) filesystem() system.FileSystem {
	if t.fs != nil {
		return t.fs
	}
	return system.DefaultFS()
}
