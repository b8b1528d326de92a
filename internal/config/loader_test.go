package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSimCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	body := `
board:
  size: 16
run:
  planner: greedy
  episodes: 3
  max_ticks: 5000
search:
  bias: 0.2
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadSim(path)
	if err != nil {
		t.Fatalf("LoadSim() failed: %v", err)
	}
	if cfg.Board.Size != 16 {
		t.Errorf("Board.Size = %d, expected 16", cfg.Board.Size)
	}
	if cfg.Run.Planner != "greedy" || cfg.Run.Episodes != 3 || cfg.Run.MaxTicks != 5000 {
		t.Errorf("Run = %+v", cfg.Run)
	}
	if cfg.Search.Bias != 0.2 {
		t.Errorf("Search.Bias = %v, expected 0.2", cfg.Search.Bias)
	}
}

func TestLoadSimMissingCustomPathFails(t *testing.T) {
	if _, err := LoadSim(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadSimEmbeddedDefault(t *testing.T) {
	// Run from an empty directory with no home override so the search
	// falls through to the embedded YAML.
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSim("")
	if err != nil {
		t.Fatalf("LoadSim() failed: %v", err)
	}
	want := DefaultSimConfig()
	if cfg != want {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, want)
	}
}
