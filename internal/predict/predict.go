// Package predict forecasts ship trajectories from a kinematic snapshot and an
// assigned motion behavior. Forecasts are approximations for lead aim and
// threat scoring, not replays of the simulation: each behavior has a
// closed-form generator, confidence decays monotonically over the horizon, and
// every behavior carries a fixed effective range describing how much
// positional uncertainty a consumer should budget for.
package predict

import "math"

// Input is the kinematic snapshot a forecast starts from.
type Input struct {
	Pos      Vec2
	Vel      Vec2
	Behavior Behavior
	Faction  FactionID
	Horizon  float64
}

// Sample is one forecast point along the horizon.
type Sample struct {
	Pos        Vec2
	Confidence float64
}

// Result is the full forecast for one Predict call. Samples are time-ascending
// starting at t=0 and EffectiveRange is constant for the call.
type Result struct {
	Behavior       Behavior
	Samples        []Sample
	EffectiveRange float64
}

// Predictor evaluates trajectory forecasts against a fixed configuration. It
// holds no mutable state besides the injected noise source, so a single
// instance serves concurrent callers.
type Predictor struct {
	cfg   Config
	noise Noise
}

// New builds a predictor. A nil noise source disables swarm jitter.
func New(cfg Config, noise Noise) *Predictor {
	if noise == nil {
		noise = ZeroNoise{}
	}
	return &Predictor{cfg: cfg.normalized(), noise: noise}
}

// Config returns the normalized configuration the predictor evaluates under.
func (p *Predictor) Config() Config {
	if p == nil {
		return DefaultConfig()
	}
	return p.cfg
}

// Predict forecasts positions over [0, in.Horizon]. It never fails: a
// non-positive horizon yields the single t=0 sample at full confidence and an
// unrecognized behavior resolves to the direct policy.
func (p *Predictor) Predict(in Input) Result {
	if p == nil {
		p = New(DefaultConfig(), nil)
	}
	cfg := p.Config()
	behavior := in.Behavior.Resolved()

	result := Result{
		Behavior:       behavior,
		EffectiveRange: cfg.EffectiveRange(behavior),
	}

	if in.Horizon <= 0 {
		result.Samples = []Sample{{Pos: in.Pos, Confidence: 1.0}}
		return result
	}

	interval := cfg.SampleInterval
	count := 1 + int(in.Horizon/interval+1e-9)
	if count > maxSamples {
		count = maxSamples
		interval = in.Horizon / float64(count-1)
	}

	generator := p.generator(cfg, behavior, in)
	samples := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) * interval
		if t > in.Horizon {
			t = in.Horizon
		}
		samples = append(samples, Sample{
			Pos:        generator(t, i),
			Confidence: confidenceAt(t, in.Horizon, cfg.ConfidenceFloor),
		})
	}

	result.Samples = samples
	return result
}

// confidenceAt decays linearly from 1.0 at t=0 to the floor at the horizon.
func confidenceAt(t, horizon, floor float64) float64 {
	if horizon <= 0 || t <= 0 {
		return 1.0
	}
	fraction := t / horizon
	if fraction > 1 {
		fraction = 1
	}
	return 1.0 - (1.0-floor)*fraction
}

// generator selects the position function for one call. Each generator is a
// closure over state derived once from the input, so sampling stays O(1) per
// point regardless of horizon.
func (p *Predictor) generator(cfg Config, behavior Behavior, in Input) func(t float64, index int) Vec2 {
	switch behavior {
	case BehaviorStrafe:
		return strafeGenerator(cfg, in)
	case BehaviorOrbit:
		return orbitGenerator(cfg, in)
	case BehaviorSwarm:
		return p.swarmGenerator(cfg, in)
	default:
		// Direct and hunter share the straight-line forecast; hunter only
		// widens the effective range.
		return directGenerator(in)
	}
}

func directGenerator(in Input) func(t float64, index int) Vec2 {
	return func(t float64, _ int) Vec2 {
		return Vec2{X: in.Pos.X + in.Vel.X*t, Y: in.Pos.Y + in.Vel.Y*t}
	}
}

// strafeGenerator overlays a lateral sinusoid on the straight-line path,
// orthogonal to the current heading. A ship with no velocity weaves around its
// anchor point along a fixed axis.
func strafeGenerator(cfg Config, in Input) func(t float64, index int) Vec2 {
	heading := in.Vel.Normalized()
	if heading == (Vec2{}) {
		heading = Vec2{X: 1, Y: 0}
	}
	perpendicular := Vec2{X: -heading.Y, Y: heading.X}
	angular := 2 * math.Pi * cfg.StrafeFrequency

	return func(t float64, _ int) Vec2 {
		offset := cfg.StrafeAmplitude * math.Sin(angular*t)
		return Vec2{
			X: in.Pos.X + in.Vel.X*t + perpendicular.X*offset,
			Y: in.Pos.Y + in.Vel.Y*t + perpendicular.Y*offset,
		}
	}
}

// orbitGenerator forecasts circular motion around the configured center. The
// radius estimate relaxes exponentially toward the formation ring, so a ship
// already on the ring stays there and a distant ship is predicted to close on
// it. Angular rate comes from the tangential velocity component, falling back
// to a fixed rate when the current velocity is degenerate.
func orbitGenerator(cfg Config, in Input) func(t float64, index int) Vec2 {
	radial := in.Pos.Sub(cfg.OrbitCenter)
	startRadius := radial.Length()
	startAngle := math.Atan2(radial.Y, radial.X)

	angularRate := cfg.OrbitAngularRate
	if startRadius > 1e-6 {
		tangential := (radial.X*in.Vel.Y - radial.Y*in.Vel.X) / startRadius
		if derived := tangential / startRadius; math.Abs(derived) > 1e-3 {
			angularRate = derived
		}
	}

	return func(t float64, _ int) Vec2 {
		radius := cfg.OrbitRadius + (startRadius-cfg.OrbitRadius)*math.Exp(-cfg.OrbitCorrection*t)
		angle := startAngle + angularRate*t
		return Vec2{
			X: cfg.OrbitCenter.X + math.Cos(angle)*radius,
			Y: cfg.OrbitCenter.Y + math.Sin(angle)*radius,
		}
	}
}

// swarmGenerator drifts toward the zone-center attractor with bounded jitter
// per sample. Jitter is kept well below the drift step so the net displacement
// still trends toward the attractor. Sample 0 is exact.
func (p *Predictor) swarmGenerator(cfg Config, in Input) func(t float64, index int) Vec2 {
	toward := cfg.OrbitCenter.Sub(in.Pos).Normalized()
	drift := in.Vel.Length()
	if drift < cfg.SwarmDrift {
		drift = cfg.SwarmDrift
	}

	noise := p.noise
	if noise == nil {
		noise = ZeroNoise{}
	}

	return func(t float64, index int) Vec2 {
		pos := Vec2{
			X: in.Pos.X + toward.X*drift*t,
			Y: in.Pos.Y + toward.Y*drift*t,
		}
		if index > 0 {
			pos.X += noise.Jitter(cfg.SwarmJitter)
			pos.Y += noise.Jitter(cfg.SwarmJitter)
		}
		return pos
	}
}
