package runtimepath

import (
	"path/filepath"
	"testing"
)

func TestDirPrefersXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/xdg-test")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != "/tmp/xdg-test" {
		t.Errorf("Dir() = %q, want /tmp/xdg-test", dir)
	}
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/xdg-test")

	path, err := SocketPath()
	if err != nil {
		t.Fatalf("SocketPath: %v", err)
	}
	if path != filepath.Join("/tmp/xdg-test", "glide.sock") {
		t.Errorf("SocketPath() = %q", path)
	}
}
