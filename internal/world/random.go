package world

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// DeterministicSeedValue derives a stable int64 seed from a root seed string
// and a subsystem label, so independent subsystems draw from independent but
// reproducible streams.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	seedValue := DeterministicSeedValue(rootSeed, label)
	return rand.New(rand.NewSource(seedValue))
}

func RandomFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.New(rand.NewSource(DeterministicSeedValue(DefaultSeed, "world"))).Float64()
	}
	return rng.Float64()
}

func RandomAngle(rng *rand.Rand) float64 {
	return RandomFloat(rng) * 2 * math.Pi
}

func RandomDistance(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + RandomFloat(rng)*(max-min)
}

// RandomUnitVector returns a direction drawn uniformly from the circle.
func RandomUnitVector(rng *rand.Rand) Vec2 {
	angle := RandomAngle(rng)
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// RandomPointInRing picks a point uniformly by area between inner and outer
// radius around center.
func RandomPointInRing(rng *rand.Rand, center Vec2, inner, outer float64) Vec2 {
	if outer < inner {
		outer = inner
	}
	angle := RandomAngle(rng)
	span := outer*outer - inner*inner
	radius := math.Sqrt(inner*inner + RandomFloat(rng)*span)
	return Vec2{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}
