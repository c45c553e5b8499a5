package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
)

// sandboxNameRegex validates sandbox names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
// Maximum length is 63 characters.
var sandboxNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateSandboxName checks if a sandbox name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateSandboxName(name string) error {
	if name == "" {
		return fmt.Errorf("sandbox name cannot be empty")
	}

	if !sandboxNameRegex.MatchString(name) {
		return fmt.Errorf("invalid sandbox name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	// RootDirName is the managed root directory created under the home dir.
	RootDirName = ".sandman"

	// SandboxesDirName is the subdirectory of the managed root that holds
	// one directory per named sandbox.
	SandboxesDirName = "sandboxes"

	// SettingsFileName is sandman's optional configuration file inside the
	// managed root.
	SettingsFileName = "config.toml"

	// EventLogFileName is the operation journal inside the managed root.
	EventLogFileName = "events.jsonl"
)

// Paths holds the configured paths
type Paths struct {
	// Root is the managed root, by default <home>/.sandman.
	Root string

	// SandboxesDir is <root>/sandboxes; every named sandbox is a
	// directory directly beneath it.
	SandboxesDir string

	// SettingsFile is <root>/config.toml.
	SettingsFile string

	// EventLog is <root>/events.jsonl.
	EventLog string
}

// NewPaths builds the path layout rooted at an explicit managed root.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:         root,
		SandboxesDir: filepath.Join(root, SandboxesDirName),
		SettingsFile: filepath.Join(root, SettingsFileName),
		EventLog:     filepath.Join(root, EventLogFileName),
	}
}

// DefaultPaths resolves the managed root under the user's home directory.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewPaths(filepath.Join(home, RootDirName)), nil
}

// SandboxRoot resolves the directory of a named sandbox. The result is
// confined to the sandboxes dir: a crafted name can never escape it.
func (p *Paths) SandboxRoot(name string) (string, error) {
	if err := ValidateSandboxName(name); err != nil {
		return "", err
	}

	path, err := securejoin.SecureJoin(p.SandboxesDir, name)
	if err != nil {
		return "", fmt.Errorf("invalid sandbox name %q: %w", name, err)
	}

	return path, nil
}

// Settings is sandman's own configuration, loaded from <root>/config.toml.
// Every field is optional; a missing file yields the defaults.
type Settings struct {
	// Root overrides the managed root directory.
	Root string `toml:"root"`

	// Cabal is the cabal executable to invoke.
	Cabal string `toml:"cabal"`

	// GHCPkg is the ghc-pkg executable to invoke.
	GHCPkg string `toml:"ghc-pkg"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		Cabal:  "cabal",
		GHCPkg: "ghc-pkg",
	}
}

// LoadSettings reads the settings file at path. A missing file is not an
// error: defaults are returned. Fields left unset in the file keep their
// defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if settings.Cabal == "" {
		settings.Cabal = "cabal"
	}
	if settings.GHCPkg == "" {
		settings.GHCPkg = "ghc-pkg"
	}

	return settings, nil
}
