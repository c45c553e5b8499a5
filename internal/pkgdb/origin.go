package pkgdb

import (
	"path/filepath"
	"strings"
)

// UnderRoot reports whether path lies under root, comparing whole path
// segments. "/home/u/.sandman" covers "/home/u/.sandman/x" but never
// "/home/u/.sandman2/x"; a path equal to the root counts as under it.
func UnderRoot(root, path string) bool {
	rootSegs := splitSegments(root)
	pathSegs := splitSegments(path)

	if len(pathSegs) < len(rootSegs) {
		return false
	}

	for i, seg := range rootSegs {
		if pathSegs[i] != seg {
			return false
		}
	}
	return true
}

// FromManagedRoot reports whether any artifact path of p lies under root.
func FromManagedRoot(root string, p Package) bool {
	for _, path := range p.ArtifactPaths() {
		if UnderRoot(root, path) {
			return true
		}
	}
	return false
}

// splitSegments cleans a path and splits it into its components. The
// leading separator of an absolute path is kept as its own segment so
// absolute and relative paths never compare equal.
func splitSegments(path string) []string {
	cleaned := filepath.Clean(path)

	var segs []string
	if filepath.IsAbs(cleaned) {
		segs = append(segs, string(filepath.Separator))
		cleaned = cleaned[1:]
	}

	for _, seg := range strings.Split(cleaned, string(filepath.Separator)) {
		if seg != "" && seg != "." {
			segs = append(segs, seg)
		}
	}
	return segs
}
