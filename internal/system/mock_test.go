package system

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFS_ReadFile(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/db/mtl-2.2.1-abc.conf", []byte("name: mtl"), 0644)

	data, err := mockFS.ReadFile("/db/mtl-2.2.1-abc.conf")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != "name: mtl" {
		t.Errorf("ReadFile = %q, want %q", string(data), "name: mtl")
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_CopyFile(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/src/a.conf", []byte("content"), 0644)

	if err := mockFS.CopyFile("/src/a.conf", "/dst/a.conf"); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	data, err := mockFS.ReadFile("/dst/a.conf")
	if err != nil {
		t.Fatalf("ReadFile dst error: %v", err)
	}

	if string(data) != "content" {
		t.Errorf("Dst content = %q, want %q", string(data), "content")
	}
}

func TestMockFS_CopyFile_MissingSource(t *testing.T) {
	mockFS := NewMockFS()

	if err := mockFS.CopyFile("/missing.conf", "/dst.conf"); err == nil {
		t.Error("Expected error for missing source, got nil")
	}
}

func TestMockFS_Remove(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/db/old.conf", []byte("x"), 0644)

	if err := mockFS.Remove("/db/old.conf"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	if mockFS.Exists("/db/old.conf") {
		t.Error("File should be removed")
	}

	if err := mockFS.Remove("/db/old.conf"); err != fs.ErrNotExist {
		t.Errorf("Second Remove error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_RemoveAll(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/sandboxes/web/cabal.sandbox.config", []byte("x"), 0644)
	mockFS.AddFile("/sandboxes/web/db/pkg.conf", []byte("y"), 0644)
	mockFS.AddDir("/sandboxes/webapp")

	if err := mockFS.RemoveAll("/sandboxes/web"); err != nil {
		t.Fatalf("RemoveAll error: %v", err)
	}

	if mockFS.Exists("/sandboxes/web/cabal.sandbox.config") {
		t.Error("Config should be removed")
	}
	if mockFS.Exists("/sandboxes/web/db/pkg.conf") {
		t.Error("Conf should be removed")
	}
	// A sibling whose name shares the prefix must survive
	if !mockFS.Exists("/sandboxes/webapp") {
		t.Error("Sibling dir should survive RemoveAll")
	}
}

func TestMockFS_MkdirAll(t *testing.T) {
	mockFS := NewMockFS()

	if err := mockFS.MkdirAll("/root/sandboxes/web", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	for _, dir := range []string{"/root", "/root/sandboxes", "/root/sandboxes/web"} {
		if !mockFS.IsDir(dir) {
			t.Errorf("%s should be a directory", dir)
		}
	}
}

func TestMockFS_ReadDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddDir("/sandboxes/alpha")
	mockFS.AddDir("/sandboxes/beta")
	mockFS.AddFile("/sandboxes/stray.txt", []byte("x"), 0644)

	entries, err := mockFS.ReadDir("/sandboxes")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("ReadDir returned %d entries, want 3", len(entries))
	}

	// Entries come back sorted by name
	wantNames := []string{"alpha", "beta", "stray.txt"}
	for i, want := range wantNames {
		if entries[i].Name() != want {
			t.Errorf("entries[%d].Name() = %q, want %q", i, entries[i].Name(), want)
		}
	}

	if !entries[0].IsDir() {
		t.Error("alpha should be a directory")
	}
	if entries[2].IsDir() {
		t.Error("stray.txt should not be a directory")
	}
}

func TestMockFS_ReadDir_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	if _, err := mockFS.ReadDir("/nope"); err != fs.ErrNotExist {
		t.Errorf("ReadDir error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/a.conf", []byte("x"), 0644)
	mockFS.CopyFileErr = fs.ErrPermission

	if err := mockFS.CopyFile("/a.conf", "/b.conf"); err != fs.ErrPermission {
		t.Errorf("CopyFile error = %v, want ErrPermission", err)
	}
}

func TestHasPathPrefix(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		want   bool
	}{
		{"/root/sandboxes/web/x", "/root/sandboxes/web", true},
		{"/root/sandboxes/webapp", "/root/sandboxes/web", false},
		{"/root/sandboxes/web", "/root/sandboxes/web", false},
		{"/other", "/root", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := hasPathPrefix(tt.path, tt.prefix); got != tt.want {
				t.Errorf("hasPathPrefix(%q, %q) = %v, want %v", tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestMockExecutor_Execute(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("ghc-pkg dump", []byte("id: mtl-2.2.1-abc\n"), nil)

	output, err := exec.Execute(context.Background(), "/tmp/proj", "ghc-pkg", "dump", "--package-db=/tmp/db")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "id: mtl-2.2.1-abc\n" {
		t.Errorf("Output = %q, want %q", string(output), "id: mtl-2.2.1-abc\n")
	}

	// Verify command was recorded with its working directory
	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "ghc-pkg" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "ghc-pkg")
	}
	if cmd.Dir != "/tmp/proj" {
		t.Errorf("Command dir = %q, want %q", cmd.Dir, "/tmp/proj")
	}
}

func TestMockExecutor_PatternFallback(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("cabal", []byte("bare"), nil)
	exec.AddResponse("cabal install", nil, errors.New("build failure"))

	// "cabal install ..." matches the two-token pattern first
	if _, err := exec.Execute(context.Background(), "", "cabal", "install", "mtl"); err == nil {
		t.Error("Expected canned error for cabal install")
	}

	// Other cabal subcommands fall back to the bare pattern
	output, err := exec.Execute(context.Background(), "", "cabal", "sandbox", "init")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if string(output) != "bare" {
		t.Errorf("Output = %q, want %q", string(output), "bare")
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	exec := NewMockExecutor()
	exec.DefaultResponse = MockResponse{Output: []byte("default"), Err: nil}

	output, err := exec.Execute(context.Background(), "", "unknown", "command")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "default" {
		t.Errorf("Output = %q, want %q", string(output), "default")
	}
}

func TestMockExecutor_Interactive(t *testing.T) {
	exec := NewMockExecutor()
	exec.InteractiveErr = errors.New("terminal gone")

	err := exec.ExecuteInteractive(context.Background(), "/sb/web", "cabal", "install", "mtl")
	if err == nil {
		t.Fatal("Expected injected error, got nil")
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Dir != "/sb/web" {
		t.Errorf("Command dir = %q, want %q", cmd.Dir, "/sb/web")
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "", "cmd1")
	exec.Execute(context.Background(), "", "cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}
