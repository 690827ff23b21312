package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.DefaultStyle != string(easing.StyleSmooth) {
		t.Errorf("DefaultStyle = %q, want smooth", cfg.DefaultStyle)
	}
	if cfg.Padding != string(layout.PaddingMedium) {
		t.Errorf("Padding = %q, want medium", cfg.Padding)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide", "config.yaml")

	cfg := &Config{
		DefaultStyle: "bounce",
		Padding:      "large",
		Hotkeys: map[string]string{
			"left":     "Mod4-Left",
			"maximize": "Mod4-Up",
		},
	}
	if err := cfg.SaveToPath(path); err != nil {
		t.Fatalf("SaveToPath: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.DefaultStyle != "bounce" || loaded.Padding != "large" {
		t.Errorf("loaded %+v, want bounce/large", loaded)
	}
	if loaded.Hotkeys["left"] != "Mod4-Left" || loaded.Hotkeys["maximize"] != "Mod4-Up" {
		t.Errorf("hotkeys not preserved: %+v", loaded.Hotkeys)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_style: elastic\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.DefaultStyle != "elastic" {
		t.Errorf("DefaultStyle = %q, want elastic", cfg.DefaultStyle)
	}
	if cfg.Padding != string(layout.PaddingMedium) {
		t.Errorf("Padding = %q, want medium default", cfg.Padding)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad style", Config{DefaultStyle: "zippy", Padding: "medium"}, "default_style"},
		{"bad padding", Config{DefaultStyle: "smooth", Padding: "huge"}, "padding"},
		{"bad hotkey placement", Config{
			DefaultStyle: "smooth",
			Padding:      "medium",
			Hotkeys:      map[string]string{"diagonal": "Mod4-d"},
		}, "hotkeys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_style: zippy\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath should reject an unknown style")
	}
}

func TestAccessorsFallBack(t *testing.T) {
	cfg := &Config{DefaultStyle: "nonsense", Padding: "nonsense"}
	if got := cfg.Style(); got != easing.StyleSmooth {
		t.Errorf("Style() = %q, want smooth fallback", got)
	}
	if got := cfg.PaddingLevel(); got != layout.PaddingMedium {
		t.Errorf("PaddingLevel() = %q, want medium fallback", got)
	}
}
