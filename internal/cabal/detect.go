package cabal

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bonomali/sandman/internal/system"
)

// Probe describes the availability of one toolchain executable.
type Probe struct {
	// Command is the executable name that was probed.
	Command string
	// Path is the resolved location, empty when the tool is missing.
	Path string
	// Version is the first line of the tool's --version output.
	Version string
	// Err holds the resolution or probe failure, if any.
	Err error
}

// Found reports whether the executable resolved and answered a
// version query.
func (p Probe) Found() bool {
	return p.Err == nil
}

// Detect probes the configured toolchain executables. It never fails;
// unavailable tools are reported through each Probe's Err field.
func Detect(ctx context.Context, cabalCmd, ghcPkgCmd string) []Probe {
	if cabalCmd == "" {
		cabalCmd = DefaultCabalCommand
	}
	if ghcPkgCmd == "" {
		ghcPkgCmd = DefaultGHCPkgCommand
	}
	return []Probe{probe(ctx, cabalCmd), probe(ctx, ghcPkgCmd)}
}

func probe(ctx context.Context, command string) Probe {
	p := Probe{Command: command}
	path, err := exec.LookPath(command)
	if err != nil {
		p.Err = err
		return p
	}
	p.Path = path
	out, err := system.DefaultExecutor().Execute(ctx, "", command, "--version")
	if err != nil {
		p.Err = err
		return p
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	p.Version = strings.TrimSpace(line)
	return p
}
