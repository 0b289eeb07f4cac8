package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("default scramble length = %d, want 25", cfg.ScrambleLength)
	}
	if !cfg.ColorOutput {
		t.Error("color output should default to true")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	want := &Config{
		ScrambleLength: 30,
		DatabasePath:   "/tmp/history.db",
		ColorOutput:    false,
	}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadRejectsNonPositiveLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := (&Config{ScrambleLength: -5}).Save(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("scramble length = %d, want fallback 25", cfg.ScrambleLength)
	}
}
