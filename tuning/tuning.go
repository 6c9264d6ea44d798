// Package tuning loads designer-authored overrides for the predictor
// constants. Absent file or zero-valued fields leave the compiled-in defaults
// in place.
package tuning

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"drift-and-burn/server/internal/predict"
)

// File mirrors tuning.yaml. Every field is optional.
type File struct {
	SampleInterval  float64 `yaml:"sample_interval_s" json:"sample_interval_s,omitempty"`
	ConfidenceFloor float64 `yaml:"confidence_floor" json:"confidence_floor,omitempty"`

	StrafeAmplitude   float64 `yaml:"strafe_amplitude" json:"strafe_amplitude,omitempty"`
	StrafeFrequencyHz float64 `yaml:"strafe_frequency_hz" json:"strafe_frequency_hz,omitempty"`

	SwarmDrift  float64 `yaml:"swarm_drift" json:"swarm_drift,omitempty"`
	SwarmJitter float64 `yaml:"swarm_jitter" json:"swarm_jitter,omitempty"`

	OrbitCorrection  float64 `yaml:"orbit_correction" json:"orbit_correction,omitempty"`
	OrbitAngularRate float64 `yaml:"orbit_angular_rate" json:"orbit_angular_rate,omitempty"`

	Ranges Ranges `yaml:"effective_ranges" json:"effective_ranges,omitempty"`
}

// Ranges overrides the per-behavior effective range table. The orbit range is
// derived from the formation geometry and is not overridable here.
type Ranges struct {
	Direct float64 `yaml:"direct" json:"direct,omitempty"`
	Strafe float64 `yaml:"strafe" json:"strafe,omitempty"`
	Swarm  float64 `yaml:"swarm" json:"swarm,omitempty"`
	Hunter float64 `yaml:"hunter" json:"hunter,omitempty"`
}

// Load reads a tuning file. A missing file is not an error and yields the
// zero File, which applies no overrides.
func Load(path string) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, err
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("tuning.yaml: %w", err)
	}
	return file, nil
}

// Apply overlays the non-zero overrides onto a predictor config.
func (f File) Apply(cfg predict.Config) predict.Config {
	if f.SampleInterval > 0 {
		cfg.SampleInterval = f.SampleInterval
	}
	if f.ConfidenceFloor > 0 && f.ConfidenceFloor < 1 {
		cfg.ConfidenceFloor = f.ConfidenceFloor
	}
	if f.StrafeAmplitude > 0 {
		cfg.StrafeAmplitude = f.StrafeAmplitude
	}
	if f.StrafeFrequencyHz > 0 {
		cfg.StrafeFrequency = f.StrafeFrequencyHz
	}
	if f.SwarmDrift > 0 {
		cfg.SwarmDrift = f.SwarmDrift
	}
	if f.SwarmJitter > 0 {
		cfg.SwarmJitter = f.SwarmJitter
	}
	if f.OrbitCorrection > 0 {
		cfg.OrbitCorrection = f.OrbitCorrection
	}
	if f.OrbitAngularRate > 0 {
		cfg.OrbitAngularRate = f.OrbitAngularRate
	}
	if f.Ranges.Direct > 0 {
		cfg.DirectRange = f.Ranges.Direct
	}
	if f.Ranges.Strafe > 0 {
		cfg.StrafeRange = f.Ranges.Strafe
	}
	if f.Ranges.Swarm > 0 {
		cfg.SwarmRange = f.Ranges.Swarm
	}
	if f.Ranges.Hunter > 0 {
		cfg.HunterRange = f.Ranges.Hunter
	}
	return cfg.Normalized()
}
