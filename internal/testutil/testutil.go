// Package testutil provides test utilities for integration tests
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/cabal"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/pkgdb"
)

// DbDirName is the package database dir scaffolded inside every test
// sandbox and project, mirroring the layout the real toolchain creates.
const DbDirName = "x86_64-linux-ghc-7.10.3-packages.conf.d"

// TestEnv holds the test environment
type TestEnv struct {
	T      *testing.T
	TmpDir string
	Paths  *config.Paths
	Tool   *cabal.MockTool
	App    *app.App

	cleanup func()
}

// NewTestEnv creates a test environment with a temp managed root and a
// mock toolchain, and installs it as the app default.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	paths := config.NewPaths(filepath.Join(tmpDir, ".sandman"))

	if err := os.MkdirAll(paths.SandboxesDir, 0755); err != nil {
		t.Fatalf("Failed to create sandboxes dir: %v", err)
	}

	mockTool := cabal.NewMockTool()

	testApp := app.New(
		app.WithPaths(paths),
		app.WithSettings(config.DefaultSettings()),
		app.WithTool(mockTool),
		app.WithJournal(audit.NewLogger(paths.EventLog)),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	return &TestEnv{
		T:      t,
		TmpDir: tmpDir,
		Paths:  paths,
		Tool:   mockTool,
		App:    testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// AddSandbox scaffolds a provisioned sandbox: its directory, a sandbox
// config naming a package database, the database dir with one conf file
// per package, and the mock toolchain's view of that database. Packages
// without explicit paths get them filled in under the sandbox root.
// Returns the database dir.
func (e *TestEnv) AddSandbox(name string, packages ...pkgdb.Package) string {
	e.T.Helper()
	return e.scaffold(filepath.Join(e.Paths.SandboxesDir, name), packages...)
}

// AddBareSandbox creates a sandbox directory without provisioning it:
// no sandbox config, no database. Returns the sandbox root.
func (e *TestEnv) AddBareSandbox(name string) string {
	e.T.Helper()
	root := filepath.Join(e.Paths.SandboxesDir, name)
	if err := os.MkdirAll(root, 0755); err != nil {
		e.T.Fatalf("Failed to create sandbox dir: %v", err)
	}
	return root
}

// AddProject scaffolds a project outside the managed root, in the same
// shape AddSandbox uses. Returns the project root and its database dir.
func (e *TestEnv) AddProject(name string, packages ...pkgdb.Package) (string, string) {
	e.T.Helper()
	root := filepath.Join(e.TmpDir, "projects", name)
	db := e.scaffold(root, packages...)
	return root, db
}

// SandboxExists checks if a sandbox directory exists
func (e *TestEnv) SandboxExists(name string) bool {
	info, err := os.Stat(filepath.Join(e.Paths.SandboxesDir, name))
	return err == nil && info.IsDir()
}

// Events reads the test environment's operation journal.
func (e *TestEnv) Events() []audit.Event {
	e.T.Helper()
	events, err := e.App.Journal.Events()
	if err != nil {
		e.T.Fatalf("Failed to read journal: %v", err)
	}
	return events
}

// scaffold builds a project-shaped directory at root and registers its
// database with the mock toolchain.
func (e *TestEnv) scaffold(root string, packages ...pkgdb.Package) string {
	e.T.Helper()

	db := filepath.Join(root, DbDirName)
	if err := os.MkdirAll(db, 0755); err != nil {
		e.T.Fatalf("Failed to create database dir: %v", err)
	}

	cfg := fmt.Sprintf("-- This is a Cabal package environment file.\n"+
		"-- THIS FILE IS AUTO-GENERATED. DO NOT EDIT DIRECTLY.\n\n"+
		"local-repo: %s\n"+
		"logs-dir: %s\n"+
		"package-db: %s\n", filepath.Join(root, "packages"), filepath.Join(root, "logs"), db)
	if err := os.WriteFile(filepath.Join(root, pkgdb.ConfigFileName), []byte(cfg), 0644); err != nil {
		e.T.Fatalf("Failed to write sandbox config: %v", err)
	}

	for i := range packages {
		if packages[i].Conf == "" {
			packages[i].Conf = filepath.Join(db, packages[i].ID+".conf")
		}
		if len(packages[i].ImportDirs) == 0 {
			packages[i].ImportDirs = []string{filepath.Join(root, "lib", packages[i].ID)}
		}
		conf := fmt.Sprintf("name: %s\nid: %s\n", pkgName(packages[i].ID), packages[i].ID)
		if err := os.WriteFile(packages[i].Conf, []byte(conf), 0644); err != nil {
			e.T.Fatalf("Failed to write conf file: %v", err)
		}
	}
	e.Tool.AddDatabase(db, packages...)

	return db
}

// pkgName guesses the package name part of an identity for fixture
// content; precision does not matter, the files are opaque to sandman.
func pkgName(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			return id[:i]
		}
	}
	return id
}
