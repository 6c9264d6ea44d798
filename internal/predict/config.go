package predict

import worldpkg "drift-and-burn/server/internal/world"

// Vec2 captures a 2D vector in world units.
type Vec2 = worldpkg.Vec2

const (
	DefaultSampleInterval  = 0.1
	DefaultConfidenceFloor = 0.25

	DefaultStrafeAmplitude = 25.0
	DefaultStrafeFrequency = 0.75

	DefaultSwarmDrift  = 60.0
	DefaultSwarmJitter = 3.0

	DefaultOrbitCorrection  = 1.2
	DefaultOrbitAngularRate = 0.6

	DefaultDirectRange = 20.0
	DefaultStrafeRange = 80.0
	DefaultSwarmRange  = 40.0
	DefaultHunterRange = 60.0

	// Orbit trust scales with the formation geometry instead of a flat
	// constant.
	orbitRangeScale = 0.25

	// maxSamples bounds the work per call; longer horizons stretch the
	// sampling interval instead of growing the sequence.
	maxSamples = 512
)

// Config carries the static world geometry and tuning constants consumed by
// the predictor. It is passed explicitly so calls stay pure and tests can
// override any value per call site.
type Config struct {
	WorldWidth  float64
	WorldHeight float64
	OrbitCenter Vec2
	OrbitRadius float64

	SampleInterval  float64
	ConfidenceFloor float64

	StrafeAmplitude float64
	StrafeFrequency float64

	SwarmDrift  float64
	SwarmJitter float64

	OrbitCorrection  float64
	OrbitAngularRate float64

	DirectRange float64
	StrafeRange float64
	SwarmRange  float64
	HunterRange float64
}

func (cfg Config) normalized() Config {
	normalized := cfg
	if normalized.WorldWidth <= 0 {
		normalized.WorldWidth = worldpkg.DefaultWidth
	}
	if normalized.WorldHeight <= 0 {
		normalized.WorldHeight = worldpkg.DefaultHeight
	}
	if normalized.OrbitCenter == (Vec2{}) {
		normalized.OrbitCenter = Vec2{X: normalized.WorldWidth / 2, Y: normalized.WorldHeight / 2}
	}
	if normalized.OrbitRadius <= 0 {
		normalized.OrbitRadius = worldpkg.DefaultOrbitRadius
	}
	if normalized.SampleInterval <= 0 {
		normalized.SampleInterval = DefaultSampleInterval
	}
	if normalized.ConfidenceFloor <= 0 || normalized.ConfidenceFloor >= 1 {
		normalized.ConfidenceFloor = DefaultConfidenceFloor
	}
	if normalized.StrafeAmplitude <= 0 {
		normalized.StrafeAmplitude = DefaultStrafeAmplitude
	}
	if normalized.StrafeFrequency <= 0 {
		normalized.StrafeFrequency = DefaultStrafeFrequency
	}
	if normalized.SwarmDrift <= 0 {
		normalized.SwarmDrift = DefaultSwarmDrift
	}
	if normalized.SwarmJitter < 0 {
		normalized.SwarmJitter = DefaultSwarmJitter
	}
	if normalized.OrbitCorrection <= 0 {
		normalized.OrbitCorrection = DefaultOrbitCorrection
	}
	if normalized.OrbitAngularRate <= 0 {
		normalized.OrbitAngularRate = DefaultOrbitAngularRate
	}
	if normalized.DirectRange <= 0 {
		normalized.DirectRange = DefaultDirectRange
	}
	if normalized.StrafeRange <= 0 {
		normalized.StrafeRange = DefaultStrafeRange
	}
	if normalized.SwarmRange <= 0 {
		normalized.SwarmRange = DefaultSwarmRange
	}
	if normalized.HunterRange <= 0 {
		normalized.HunterRange = DefaultHunterRange
	}
	return normalized
}

// Normalized returns a config with defaults applied.
func (cfg Config) Normalized() Config {
	return cfg.normalized()
}

// DefaultConfig returns the tuning used by the stock combat zone.
func DefaultConfig() Config {
	return Config{}.normalized()
}

// ConfigForWorld derives predictor geometry from a world config.
func ConfigForWorld(cfg worldpkg.Config) Config {
	width, height := worldpkg.Dimensions(cfg)
	return Config{
		WorldWidth:  width,
		WorldHeight: height,
		OrbitCenter: worldpkg.Center(cfg),
		OrbitRadius: worldpkg.OrbitRadius(cfg),
	}.normalized()
}

// EffectiveRange returns the positional uncertainty budget for a behavior.
// Unknown tags inherit the direct budget.
func (cfg Config) EffectiveRange(behavior Behavior) float64 {
	switch behavior.Resolved() {
	case BehaviorStrafe:
		return cfg.StrafeRange
	case BehaviorOrbit:
		return cfg.OrbitRadius * orbitRangeScale
	case BehaviorSwarm:
		return cfg.SwarmRange
	case BehaviorHunter:
		return cfg.HunterRange
	default:
		return cfg.DirectRange
	}
}
