// Package config provides path layout and settings loading for sandman.
//
// # Managed Root
//
// All sandman state lives under one managed root, by default
// ~/.sandman:
//
//	~/.sandman/
//	    config.toml        optional settings
//	    events.jsonl       operation journal
//	    sandboxes/
//	        <name>/        one directory per named sandbox
//
// The root is never hard-coded at use sites: Paths is built once (from
// DefaultPaths or an explicit root) and threaded through, so tests can
// substitute a temporary directory.
//
// # Settings
//
// Settings come from <root>/config.toml. Every field is optional:
//
//	root = "/srv/sandman"              # override the managed root
//	cabal = "/opt/haskell/bin/cabal"   # cabal executable
//	"ghc-pkg" = "ghc-pkg-7.8"          # ghc-pkg executable
//
// A missing file yields the defaults ("cabal", "ghc-pkg", root under
// the home directory).
//
// # Sandbox Names
//
// Sandbox names become directory names under the sandboxes dir, so they
// are validated (lowercase alphanumerics, underscores, hyphens; 63 char
// max) and resolved with a confined join that cannot escape the
// sandboxes dir.
package config
