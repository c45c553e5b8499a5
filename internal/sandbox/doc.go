// Package sandbox provides sandbox lifecycle management for sandman.
//
// This package handles creation, destruction, package installation, and
// the mix/clean reconciliation between sandbox package databases and
// project package databases.
//
// # Store
//
// Store enumerates the managed root:
//
//	store := sandbox.NewStore(paths, fs)
//	all, err := store.List()
//
// # Creator
//
// Creator provisions a new sandbox through the external toolchain:
//
//	creator := sandbox.NewCreator(paths, tool, fs, journal)
//	result, err := creator.Create(ctx, "web")
//
// On failure, cleanup is automatic: the half-provisioned sandbox
// directory is removed.
//
// # Mixer
//
// Mixer reconciles package registrations between databases. Mix copies
// the registrations a project database lacks from a sandbox database;
// Clean deletes the registrations a project database gained from
// managed sandboxes. Both rebuild the target database's cache after
// changing its files, and both surface partial completion instead of
// rolling it back.
package sandbox
