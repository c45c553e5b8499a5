// Package pkgdb locates, enumerates, and reconciles cabal package
// databases.
//
// # Databases and Records
//
// Every sandbox root (shared or per-project) carries a
// cabal.sandbox.config whose package-db line names the sandbox's
// package database directory; LocateDb extracts it. The database holds
// one registration (.conf) file per installed package, and ghc-pkg
// enumerates it; ParseDump turns that output into Package records.
//
// A Package carries its identity (the full name-version-hash string,
// compared only for exact equality), its registration file path, and
// the artifact paths its registration points at.
//
// # Reconciliation
//
// Mixing and cleaning are driven by two pure functions:
//
//   - ComputeMixPlan(source, target): the source records whose identity
//     the target lacks, in source order. Nothing is ever overwritten.
//   - ComputeCleanPlan(root, target): the target records with at least
//     one artifact path under root, i.e. packages that came from a
//     managed sandbox rather than a direct install.
//
// Origin detection compares whole path segments, so a managed root of
// /home/u/.sandman never claims /home/u/.sandman2/pkg.
//
// Plans are applied by CopyConfs and RemoveConfs, which transfer only
// the registration files; package artifacts stay in the sandbox they
// were built in. Transfers stop at the first failure and report how far
// they got; completed work is left in place. Callers must follow any
// non-empty apply with a ghc-pkg recache of the target database.
//
// # Known Limitation
//
// A package mixed from sandbox A into sandbox B keeps A's artifact
// paths in its registration. When B is later mixed into a project,
// cleaning that project removes the package like any other managed
// registration, but nothing distinguishes "installed into B" from
// "mixed into B" afterwards.
package pkgdb
