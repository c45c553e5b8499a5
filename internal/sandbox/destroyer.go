package sandbox

import (
	"fmt"

	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/system"
)

// Destroyer removes sandboxes from the managed root.
type Destroyer struct {
	paths   *config.Paths
	fs      system.FileSystem
	journal *audit.Logger
}

// NewDestroyer creates a Destroyer with the given dependencies.
func NewDestroyer(paths *config.Paths, fs system.FileSystem, journal *audit.Logger) *Destroyer {
	return &Destroyer{paths: paths, fs: fs, journal: journal}
}

// Destroy deletes the named sandbox and everything beneath it.
//
// Projects that mixed packages in from this sandbox keep their copied
// registration files but lose the artifacts those files point at; a
// later clean in such projects sweeps the leftovers out.
func (d *Destroyer) Destroy(name string) error {
	root, err := resolveRoot(d.paths, name)
	if err != nil {
		return err
	}
	if !d.fs.IsDir(root) {
		return errors.SandboxNotFound(name)
	}

	logging.Debug("destroying sandbox", "name", name, "root", root)
	if err := d.fs.RemoveAll(root); err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to remove sandbox %s", name), err)
	}

	recordEvent(d.journal, audit.EventDestroy, name, "")
	return nil
}
