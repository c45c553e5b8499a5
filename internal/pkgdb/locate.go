package pkgdb

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/system"
)

// ConfigFileName is the file cabal writes into every sandbox root.
const ConfigFileName = "cabal.sandbox.config"

// packageDbKey introduces the database path line in a sandbox config.
const packageDbKey = "package-db:"

// LocateDb returns the package database directory recorded in the
// sandbox config under root. The first package-db line wins.
func LocateDb(fs system.FileSystem, root string) (string, error) {
	path := filepath.Join(root, ConfigFileName)

	data, err := fs.ReadFile(path)
	if err != nil {
		return "", errors.ConfigNotFound(path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		value, ok := strings.CutPrefix(line, packageDbKey)
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" {
			return "", errors.PackageDbUndetermined(path)
		}
		return value, nil
	}

	return "", errors.PackageDbUndetermined(path)
}
