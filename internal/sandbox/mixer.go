package sandbox

import (
	"context"
	"fmt"

	"github.com/bonomali/sandman/internal/audit"
	"github.com/bonomali/sandman/internal/cabal"
	"github.com/bonomali/sandman/internal/config"
	"github.com/bonomali/sandman/internal/errors"
	"github.com/bonomali/sandman/internal/logging"
	"github.com/bonomali/sandman/internal/pkgdb"
	"github.com/bonomali/sandman/internal/system"
)

// Mixer reconciles package registrations between sandbox and project
// databases.
type Mixer struct {
	paths   *config.Paths
	tool    cabal.Tool
	fs      system.FileSystem
	journal *audit.Logger
}

// NewMixer creates a Mixer with the given dependencies.
func NewMixer(paths *config.Paths, tool cabal.Tool, fs system.FileSystem, journal *audit.Logger) *Mixer {
	return &Mixer{paths: paths, tool: tool, fs: fs, journal: journal}
}

// Mix copies the registrations the project database lacks from the
// named sandbox's database, then rebuilds the project cache. An empty
// plan is a successful no-op that leaves the database untouched.
//
// Transfer stops at the first failing copy. Files copied before the
// failure stay in place, the cache is still rebuilt to cover them, and
// the copy failure is returned alongside the partial result.
func (m *Mixer) Mix(ctx context.Context, name, projectRoot string) (*MixResult, error) {
	logging.Debug("starting mix", "sandbox", name, "project", projectRoot)

	root, err := resolveRoot(m.paths, name)
	if err != nil {
		return nil, err
	}
	if !m.fs.IsDir(root) {
		return nil, errors.SandboxNotFound(name)
	}

	sourceDb, err := pkgdb.LocateDb(m.fs, root)
	if err != nil {
		return nil, err
	}
	targetDb, err := pkgdb.LocateDb(m.fs, projectRoot)
	if err != nil {
		return nil, err
	}

	sourcePkgs, err := m.tool.Packages(ctx, sourceDb)
	if err != nil {
		return nil, err
	}
	targetPkgs, err := m.tool.Packages(ctx, targetDb)
	if err != nil {
		return nil, err
	}

	plan := pkgdb.ComputeMixPlan(
		pkgdb.Database{Dir: sourceDb, Packages: sourcePkgs},
		pkgdb.Database{Dir: targetDb, Packages: targetPkgs},
	)

	result := &MixResult{
		Sandbox:  name,
		SourceDb: sourceDb,
		TargetDb: targetDb,
		Planned:  len(plan),
		Packages: packageIDs(plan),
	}
	if len(plan) == 0 {
		logging.Debug("nothing to mix", "sandbox", name, "project", projectRoot)
		return result, nil
	}

	copied, copyErr := pkgdb.CopyConfs(m.fs, plan, targetDb)
	result.Copied = copied

	if err := m.recache(ctx, targetDb, copied, copyErr); err != nil {
		return result, err
	}
	result.Recached = copied > 0

	if copyErr != nil {
		return result, copyErr
	}

	recordEvent(m.journal, audit.EventMix, name, fmt.Sprintf("project=%s packages=%d", projectRoot, copied))
	logging.Debug("mix complete", "sandbox", name, "copied", copied)
	return result, nil
}

// Clean deletes the registrations the project database gained from
// managed sandboxes, then rebuilds the project cache. Same empty-plan
// and partial-failure posture as Mix.
func (m *Mixer) Clean(ctx context.Context, projectRoot string) (*CleanResult, error) {
	logging.Debug("starting clean", "project", projectRoot)

	targetDb, err := pkgdb.LocateDb(m.fs, projectRoot)
	if err != nil {
		return nil, err
	}

	targetPkgs, err := m.tool.Packages(ctx, targetDb)
	if err != nil {
		return nil, err
	}

	plan := pkgdb.ComputeCleanPlan(m.paths.SandboxesDir, pkgdb.Database{Dir: targetDb, Packages: targetPkgs})

	result := &CleanResult{TargetDb: targetDb, Planned: len(plan), Packages: packageIDs(plan)}
	if len(plan) == 0 {
		logging.Debug("nothing to clean", "project", projectRoot)
		return result, nil
	}

	removed, removeErr := pkgdb.RemoveConfs(m.fs, plan)
	result.Removed = removed

	if err := m.recache(ctx, targetDb, removed, removeErr); err != nil {
		return result, err
	}
	result.Recached = removed > 0

	if removeErr != nil {
		return result, removeErr
	}

	recordEvent(m.journal, audit.EventClean, "", fmt.Sprintf("project=%s packages=%d", projectRoot, removed))
	logging.Debug("clean complete", "project", projectRoot, "removed", removed)
	return result, nil
}

func packageIDs(plan []pkgdb.Package) []string {
	if len(plan) == 0 {
		return nil
	}
	ids := make([]string, len(plan))
	for i, p := range plan {
		ids[i] = p.ID
	}
	return ids
}

// recache rebuilds the target cache when the transfer changed any file.
// The database's queryable view must track its file set even after a
// transfer that stopped early, so this runs before the transfer error
// is surfaced; when both steps fail, the transfer failure wins and the
// recache failure is logged.
func (m *Mixer) recache(ctx context.Context, targetDb string, changed int, transferErr error) error {
	if changed == 0 {
		return nil
	}
	if err := m.tool.Recache(ctx, targetDb); err != nil {
		if transferErr != nil {
			logging.Warn("cache rebuild failed after partial transfer", "db", targetDb, "error", err)
			return transferErr
		}
		return err
	}
	return nil
}
