package world

import "strings"

const (
	DefaultSeed        = "skirmish"
	DefaultWidth       = 1920.0
	DefaultHeight      = 1080.0
	DefaultOrbitRadius = 300.0
)

// Config captures the toggles used when seeding a combat zone.
type Config struct {
	Seed        string  `json:"seed"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	OrbitRadius float64 `json:"orbitRadius"`

	Ships       bool `json:"ships"`
	DirectCount int  `json:"directCount"`
	StrafeCount int  `json:"strafeCount"`
	OrbitCount  int  `json:"orbitCount"`
	SwarmCount  int  `json:"swarmCount"`
	HunterCount int  `json:"hunterCount"`

	Turrets     bool `json:"turrets"`
	TurretCount int  `json:"turretCount"`
}

func (cfg Config) normalized() Config {
	normalized := cfg
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if normalized.Seed == "" {
		normalized.Seed = DefaultSeed
	}
	if normalized.Width <= 0 {
		normalized.Width = DefaultWidth
	}
	if normalized.Height <= 0 {
		normalized.Height = DefaultHeight
	}
	if normalized.OrbitRadius <= 0 {
		normalized.OrbitRadius = DefaultOrbitRadius
	}
	if normalized.DirectCount < 0 {
		normalized.DirectCount = 0
	}
	if normalized.StrafeCount < 0 {
		normalized.StrafeCount = 0
	}
	if normalized.OrbitCount < 0 {
		normalized.OrbitCount = 0
	}
	if normalized.SwarmCount < 0 {
		normalized.SwarmCount = 0
	}
	if normalized.HunterCount < 0 {
		normalized.HunterCount = 0
	}
	if normalized.TurretCount < 0 {
		normalized.TurretCount = 0
	}
	return normalized
}

// Normalized returns a config with defaults applied.
func (cfg Config) Normalized() Config {
	return cfg.normalized()
}

// DefaultConfig seeds one wing of each behavior plus a turret ring.
func DefaultConfig() Config {
	return Config{
		Seed:        DefaultSeed,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		OrbitRadius: DefaultOrbitRadius,
		Ships:       true,
		DirectCount: 2,
		StrafeCount: 2,
		OrbitCount:  2,
		SwarmCount:  4,
		HunterCount: 1,
		Turrets:     true,
		TurretCount: 4,
	}
}
