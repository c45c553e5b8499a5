package pkgdb

import (
	"reflect"
	"testing"
)

const dumpOutput = `name: mtl
version: 2.2.1
id: mtl-2.2.1-8frcss4a0jd2mvkxx2l2d2f1
license: BSD3
exposed: True
import-dirs: /sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/mtl-2.2.1
library-dirs: /sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/mtl-2.2.1
hs-libraries: HSmtl-2.2.1
depends: base-4.7.0.2-bfd89587617e381ae01b8dd7b6c7f1c1
haddock-interfaces: /sb/web/.cabal-sandbox/share/doc/mtl-2.2.1/html/mtl.haddock
---
name: text
version: 1.2.0.4
id: text-1.2.0.4-2cb70b4f90a2e316cd51c702ae0e8b77
import-dirs: /sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/text-1.2.0.4
             /sb/web/.cabal-sandbox/lib/extra/text-1.2.0.4
library-dirs: /sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/text-1.2.0.4
---
name: broken
version: 0.1
`

func TestParseDump(t *testing.T) {
	pkgs := ParseDump("/proj/db", []byte(dumpOutput))

	if len(pkgs) != 2 {
		t.Fatalf("ParseDump returned %d packages, want 2", len(pkgs))
	}

	mtl := pkgs[0]
	if mtl.ID != "mtl-2.2.1-8frcss4a0jd2mvkxx2l2d2f1" {
		t.Errorf("pkgs[0].ID = %q", mtl.ID)
	}
	if mtl.Conf != "/proj/db/mtl-2.2.1-8frcss4a0jd2mvkxx2l2d2f1.conf" {
		t.Errorf("pkgs[0].Conf = %q", mtl.Conf)
	}
	if len(mtl.ImportDirs) != 1 || mtl.ImportDirs[0] != "/sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/mtl-2.2.1" {
		t.Errorf("pkgs[0].ImportDirs = %v", mtl.ImportDirs)
	}
	if len(mtl.HaddockInterfaces) != 1 {
		t.Errorf("pkgs[0].HaddockInterfaces = %v", mtl.HaddockInterfaces)
	}

	text := pkgs[1]
	if text.ID != "text-1.2.0.4-2cb70b4f90a2e316cd51c702ae0e8b77" {
		t.Errorf("pkgs[1].ID = %q", text.ID)
	}
	// Continuation line extends import-dirs
	wantImports := []string{
		"/sb/web/.cabal-sandbox/lib/x86_64-linux-ghc-7.8.4/text-1.2.0.4",
		"/sb/web/.cabal-sandbox/lib/extra/text-1.2.0.4",
	}
	if !reflect.DeepEqual(text.ImportDirs, wantImports) {
		t.Errorf("pkgs[1].ImportDirs = %v, want %v", text.ImportDirs, wantImports)
	}
	if len(text.HaddockInterfaces) != 0 {
		t.Errorf("pkgs[1].HaddockInterfaces = %v, want none", text.HaddockInterfaces)
	}
}

func TestParseDump_OrderPreserved(t *testing.T) {
	output := "id: c-1.0-x\n---\nid: a-1.0-y\n---\nid: b-1.0-z\n"

	pkgs := ParseDump("/db", []byte(output))

	wantOrder := []string{"c-1.0-x", "a-1.0-y", "b-1.0-z"}
	if len(pkgs) != len(wantOrder) {
		t.Fatalf("ParseDump returned %d packages, want %d", len(pkgs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if pkgs[i].ID != want {
			t.Errorf("pkgs[%d].ID = %q, want %q", i, pkgs[i].ID, want)
		}
	}
}

func TestParseDump_Empty(t *testing.T) {
	if pkgs := ParseDump("/db", nil); len(pkgs) != 0 {
		t.Errorf("ParseDump(nil) = %v, want empty", pkgs)
	}

	if pkgs := ParseDump("/db", []byte("\n")); len(pkgs) != 0 {
		t.Errorf("ParseDump(blank) = %v, want empty", pkgs)
	}
}

func TestParseDump_TrailingSeparator(t *testing.T) {
	pkgs := ParseDump("/db", []byte("id: only-1.0-h\n---\n"))

	if len(pkgs) != 1 {
		t.Fatalf("ParseDump returned %d packages, want 1", len(pkgs))
	}
	if pkgs[0].ID != "only-1.0-h" {
		t.Errorf("pkgs[0].ID = %q, want %q", pkgs[0].ID, "only-1.0-h")
	}
}

func TestArtifactPaths(t *testing.T) {
	p := Package{
		ID:                "mtl-2.2.1-abc",
		Conf:              "/db/mtl-2.2.1-abc.conf",
		ImportDirs:        []string{"/sb/lib/mtl"},
		LibraryDirs:       []string{"/sb/lib/mtl"},
		HaddockInterfaces: []string{"/sb/doc/mtl.haddock"},
	}

	want := []string{"/db/mtl-2.2.1-abc.conf", "/sb/lib/mtl", "/sb/lib/mtl", "/sb/doc/mtl.haddock"}
	if got := p.ArtifactPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("ArtifactPaths() = %v, want %v", got, want)
	}
}
