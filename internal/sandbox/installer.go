package sandbox

import (
	"context"
	"strings"

	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/cabal"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/system"
)

// Installer builds packages into existing sandboxes.
type Installer struct {
	paths   *config.Paths
	tool    cabal.Tool
	fs      system.FileSystem
	journal *audit.Logger
}

// NewInstaller creates an Installer with the given dependencies.
func NewInstaller(paths *config.Paths, tool cabal.Tool, fs system.FileSystem, journal *audit.Logger) *Installer {
	return &Installer{paths: paths, tool: tool, fs: fs, journal: journal}
}

// Install builds the given packages into the named sandbox. The
// toolchain's build output streams to the terminal, and its exit status
// decides success.
func (i *Installer) Install(ctx context.Context, name string, packages []string) error {
	if len(packages) == 0 {
		return errors.ValidationError("no packages to install")
	}

	root, err := resolveRoot(i.paths, name)
	if err != nil {
		return err
	}
	if !i.fs.IsDir(root) {
		return errors.SandboxNotFound(name)
	}

	logging.Debug("installing packages", "sandbox", name, "packages", strings.Join(packages, " "))
	if err := i.tool.Install(ctx, root, packages); err != nil {
		return err
	}

	recordEvent(i.journal, audit.EventInstall, name, strings.Join(packages, " "))
	return nil
}
