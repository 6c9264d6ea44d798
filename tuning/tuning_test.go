package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"drift-and-burn/server/internal/predict"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	file, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if file != (File{}) {
		t.Fatalf("missing file produced overrides: %+v", file)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("strafe_amplitude: [not a number"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed yaml")
	}
}

func TestLoadAndApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	raw := []byte(`
strafe_amplitude: 40
swarm_jitter: 1.5
confidence_floor: 0.5
effective_ranges:
  hunter: 90
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := file.Apply(predict.DefaultConfig())
	if cfg.StrafeAmplitude != 40 {
		t.Fatalf("strafe amplitude = %f, want 40", cfg.StrafeAmplitude)
	}
	if cfg.SwarmJitter != 1.5 {
		t.Fatalf("swarm jitter = %f, want 1.5", cfg.SwarmJitter)
	}
	if cfg.ConfidenceFloor != 0.5 {
		t.Fatalf("confidence floor = %f, want 0.5", cfg.ConfidenceFloor)
	}
	if cfg.HunterRange != 90 {
		t.Fatalf("hunter range = %f, want 90", cfg.HunterRange)
	}
	// Untouched values keep their defaults.
	if cfg.SwarmDrift != predict.DefaultSwarmDrift {
		t.Fatalf("swarm drift changed without override: %f", cfg.SwarmDrift)
	}
}

func TestApplyZeroFileKeepsDefaults(t *testing.T) {
	cfg := File{}.Apply(predict.DefaultConfig())
	if cfg != predict.DefaultConfig() {
		t.Fatalf("zero overrides mutated the config: %+v", cfg)
	}
}
