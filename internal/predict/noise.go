package predict

import (
	"math/rand"
	"sync"

	worldpkg "drift-and-burn/server/internal/world"
)

// Noise supplies the bounded jitter consumed by the swarm generator. Sources
// must be safe for concurrent callers; everything else in the predictor is
// stateless.
type Noise interface {
	// Jitter returns a value in [-limit, limit].
	Jitter(limit float64) float64
}

// NewSeededNoise derives a reproducible noise stream from a root seed and a
// subsystem label.
func NewSeededNoise(rootSeed, label string) Noise {
	return &lockedNoise{rng: worldpkg.NewDeterministicRNG(rootSeed, label)}
}

type lockedNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (n *lockedNoise) Jitter(limit float64) float64 {
	if n == nil || n.rng == nil || limit <= 0 {
		return 0
	}
	n.mu.Lock()
	value := n.rng.Float64()
	n.mu.Unlock()
	return (value*2 - 1) * limit
}

// ZeroNoise disables swarm jitter. Tests use it to assert drift properties
// without tolerance for randomness.
type ZeroNoise struct{}

func (ZeroNoise) Jitter(float64) float64 { return 0 }
