package pkgdb

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

// ParseDump parses ghc-pkg dump output into package records for the
// database at dbDir. Records come back in dump order.
//
// The dump format is a sequence of key/value stanzas separated by "---"
// lines. Values may continue onto indented follow-up lines. Only the
// fields sandman needs are kept; stanzas without an id are skipped.
func ParseDump(dbDir string, output []byte) []Package {
	var (
		pkgs []Package
		cur  Package
		key  string
	)

	flush := func() {
		if cur.ID != "" {
			cur.Conf = filepath.Join(dbDir, cur.ID+".conf")
			pkgs = append(pkgs, cur)
		}
		cur = Package{}
		key = ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}

		// Indented lines continue the previous field.
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			addField(&cur, key, strings.Fields(line))
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(name))
		addField(&cur, key, strings.Fields(value))
	}

	flush()
	return pkgs
}

// addField folds parsed tokens into the record field named by key.
func addField(p *Package, key string, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	switch key {
	case "id":
		if p.ID == "" {
			p.ID = tokens[0]
		}
	case "import-dirs":
		p.ImportDirs = append(p.ImportDirs, tokens...)
	case "library-dirs":
		p.LibraryDirs = append(p.LibraryDirs, tokens...)
	case "haddock-interfaces":
		p.HaddockInterfaces = append(p.HaddockInterfaces, tokens...)
	}
}
