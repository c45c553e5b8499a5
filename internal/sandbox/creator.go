package sandbox

import (
	"context"
	"fmt"

	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/cabal"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/system"
)

// Creator provisions new sandboxes.
type Creator struct {
	paths   *config.Paths
	tool    cabal.Tool
	fs      system.FileSystem
	journal *audit.Logger
}

// NewCreator creates a Creator with the given dependencies.
func NewCreator(paths *config.Paths, tool cabal.Tool, fs system.FileSystem, journal *audit.Logger) *Creator {
	return &Creator{paths: paths, tool: tool, fs: fs, journal: journal}
}

// Create provisions a sandbox under the managed root. The name must be
// unused; the external toolchain initializes the sandbox in place, so
// after a successful return the sandbox directory carries a
// cabal.sandbox.config and an empty package database.
func (c *Creator) Create(ctx context.Context, name string) (*CreateResult, error) {
	logging.Debug("starting sandbox creation", "name", name)

	root, err := resolveRoot(c.paths, name)
	if err != nil {
		return nil, err
	}

	if c.fs.IsDir(root) {
		return nil, errors.SandboxAlreadyExists(name)
	}

	if err := c.fs.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to create sandbox directory %s", root), err)
	}

	if err := c.tool.SandboxInit(ctx, root); err != nil {
		c.cleanup(name, root)
		return nil, err
	}

	recordEvent(c.journal, audit.EventCreate, name, "")
	logging.Debug("sandbox created", "name", name, "root", root)

	return &CreateResult{Name: name, Root: root}, nil
}

// cleanup removes resources created during a failed sandbox creation.
func (c *Creator) cleanup(name, root string) {
	logging.Debug("cleaning up failed sandbox creation", "name", name)
	if err := c.fs.RemoveAll(root); err != nil {
		logging.Warn("failed to remove sandbox directory", "path", root, "error", err)
	}
}
