package world

import "testing"

func TestNormalizedAppliesDefaults(t *testing.T) {
	cfg := Config{Seed: "  ", Width: -5, DirectCount: -1, TurretCount: -3}.Normalized()

	if cfg.Seed != DefaultSeed {
		t.Fatalf("seed = %q, want %q", cfg.Seed, DefaultSeed)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Fatalf("dimensions = %fx%f, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.OrbitRadius != DefaultOrbitRadius {
		t.Fatalf("orbit radius = %f, want %f", cfg.OrbitRadius, DefaultOrbitRadius)
	}
	if cfg.DirectCount != 0 || cfg.TurretCount != 0 {
		t.Fatalf("negative counts survived normalization: %+v", cfg)
	}
}

func TestNormalizedPreservesExplicitValues(t *testing.T) {
	cfg := Config{Seed: "alpha", Width: 640, Height: 480, OrbitRadius: 120, SwarmCount: 7}.Normalized()

	if cfg.Seed != "alpha" || cfg.Width != 640 || cfg.Height != 480 || cfg.OrbitRadius != 120 || cfg.SwarmCount != 7 {
		t.Fatalf("explicit values were overwritten: %+v", cfg)
	}
}

func TestCenterIsZoneMidpoint(t *testing.T) {
	cfg := Config{Width: 1000, Height: 600}
	center := Center(cfg)
	if center.X != 500 || center.Y != 300 {
		t.Fatalf("center = %+v, want (500,300)", center)
	}
}
