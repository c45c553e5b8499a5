package sandbox

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/system"
)

// Sandbox describes one managed sandbox.
type Sandbox struct {
	// Name is the sandbox name.
	Name string

	// Root is the sandbox directory under the managed root. It doubles
	// as the sandbox's project root for the external toolchain.
	Root string
}

// Store enumerates and resolves sandboxes under the managed root.
// Directory existence is the sole existence check; there is no separate
// manifest.
type Store struct {
	paths *config.Paths
	fs    system.FileSystem
}

// NewStore creates a Store over the given managed root.
func NewStore(paths *config.Paths, fs system.FileSystem) *Store {
	return &Store{paths: paths, fs: fs}
}

// List returns all sandboxes sorted by name. A managed root that does
// not exist yet is an empty list, not an error.
func (s *Store) List() ([]Sandbox, error) {
	entries, err := s.fs.ReadDir(s.paths.SandboxesDir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to read %s", s.paths.SandboxesDir), err)
	}

	var sandboxes []Sandbox
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sandboxes = append(sandboxes, Sandbox{
			Name: entry.Name(),
			Root: filepath.Join(s.paths.SandboxesDir, entry.Name()),
		})
	}
	return sandboxes, nil
}

// Get resolves the named sandbox.
func (s *Store) Get(name string) (*Sandbox, error) {
	root, err := resolveRoot(s.paths, name)
	if err != nil {
		return nil, err
	}
	if !s.fs.IsDir(root) {
		return nil, errors.SandboxNotFound(name)
	}
	return &Sandbox{Name: name, Root: root}, nil
}

// Exists reports whether the named sandbox exists.
func (s *Store) Exists(name string) bool {
	root, err := resolveRoot(s.paths, name)
	if err != nil {
		return false
	}
	return s.fs.IsDir(root)
}

// resolveRoot validates a sandbox name and resolves its directory.
func resolveRoot(paths *config.Paths, name string) (string, error) {
	root, err := paths.SandboxRoot(name)
	if err != nil {
		return "", errors.ValidationError(err.Error())
	}
	return root, nil
}
