package pkgdb

// Package is one installed-package record in a package database.
type Package struct {
	// ID is the package identity as the toolchain reports it: name,
	// version, and ABI hash, e.g. "mtl-2.2.1-8frcss4a0jd2mvkxx2l2d2f1".
	// Identities are compared as exact strings and never parsed apart.
	ID string

	// Conf is the path of the package's registration file inside its
	// database directory.
	Conf string

	// ImportDirs, LibraryDirs, and HaddockInterfaces are the artifact
	// paths recorded in the registration. Origin detection walks them.
	ImportDirs        []string
	LibraryDirs       []string
	HaddockInterfaces []string
}

// ArtifactPaths returns every filesystem path the record points at,
// registration file included.
func (p Package) ArtifactPaths() []string {
	paths := make([]string, 0, 1+len(p.ImportDirs)+len(p.LibraryDirs)+len(p.HaddockInterfaces))
	paths = append(paths, p.Conf)
	paths = append(paths, p.ImportDirs...)
	paths = append(paths, p.LibraryDirs...)
	paths = append(paths, p.HaddockInterfaces...)
	return paths
}

// Database is an enumerated package database.
type Database struct {
	// Dir is the database directory.
	Dir string

	// Packages holds the records in enumeration order.
	Packages []Package
}

// identitySet builds the set of identities present in pkgs.
func identitySet(pkgs []Package) map[string]struct{} {
	set := make(map[string]struct{}, len(pkgs))
	for _, p := range pkgs {
		set[p.ID] = struct{}{}
	}
	return set
}
