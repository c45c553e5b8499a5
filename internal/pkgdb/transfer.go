package pkgdb

import (
	"path/filepath"

	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/system"
)

// CopyConfs copies each plan record's registration file into dbDir,
// keeping the base name. The first failure stops the transfer and is
// returned as a CopyFailed naming the record; earlier copies remain in
// place. The count of completed copies always comes back.
func CopyConfs(fs system.FileSystem, plan []Package, dbDir string) (int, error) {
	for i, p := range plan {
		dst := filepath.Join(dbDir, filepath.Base(p.Conf))
		if err := fs.CopyFile(p.Conf, dst); err != nil {
			return i, errors.CopyFailed(p.ID, err)
		}
	}
	return len(plan), nil
}

// RemoveConfs deletes each plan record's registration file. The first
// failure stops the pass and is returned as a DeleteFailed naming the
// record; earlier deletions stand. The count of completed deletions
// always comes back.
func RemoveConfs(fs system.FileSystem, plan []Package) (int, error) {
	for i, p := range plan {
		if err := fs.Remove(p.Conf); err != nil {
			return i, errors.DeleteFailed(p.ID, err)
		}
	}
	return len(plan), nil
}
