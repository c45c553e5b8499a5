package cabal

import (
	"context"
	"testing"
)

func TestDetect_Defaults(t *testing.T) {
	probes := Detect(context.Background(), "", "")
	if len(probes) != 2 {
		t.Fatalf("got %d probes, want 2", len(probes))
	}
	if probes[0].Command != "cabal" {
		t.Errorf("probes[0].Command = %q, want %q", probes[0].Command, "cabal")
	}
	if probes[1].Command != "ghc-pkg" {
		t.Errorf("probes[1].Command = %q, want %q", probes[1].Command, "ghc-pkg")
	}
}

func TestDetect_CustomCommands(t *testing.T) {
	probes := Detect(context.Background(), "cabal-1.22", "ghc-pkg-7.10.3")
	if probes[0].Command != "cabal-1.22" {
		t.Errorf("probes[0].Command = %q, want %q", probes[0].Command, "cabal-1.22")
	}
	if probes[1].Command != "ghc-pkg-7.10.3" {
		t.Errorf("probes[1].Command = %q, want %q", probes[1].Command, "ghc-pkg-7.10.3")
	}
}

func TestProbe_NotFound(t *testing.T) {
	p := probe(context.Background(), "sandman-test-no-such-tool")
	if p.Found() {
		t.Error("Found() = true for a nonexistent executable")
	}
	if p.Err == nil {
		t.Error("Err = nil, want lookup failure")
	}
	if p.Path != "" {
		t.Errorf("Path = %q, want empty", p.Path)
	}
}
