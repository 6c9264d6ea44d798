package predict

// Behavior enumerates the motion policies a ship can be assigned.
type Behavior string

const (
	BehaviorDirect Behavior = "direct"
	BehaviorStrafe Behavior = "strafe"
	BehaviorOrbit  Behavior = "orbit"
	BehaviorSwarm  Behavior = "swarm"
	BehaviorHunter Behavior = "hunter"
)

// Known reports whether b names one of the supported policies.
func (b Behavior) Known() bool {
	switch b {
	case BehaviorDirect, BehaviorStrafe, BehaviorOrbit, BehaviorSwarm, BehaviorHunter:
		return true
	}
	return false
}

// Resolved maps unrecognized tags to the direct policy. Upstream data can
// carry stale or malformed tags and the predictor must never fail on them.
func (b Behavior) Resolved() Behavior {
	if b.Known() {
		return b
	}
	return BehaviorDirect
}

// FactionID keys per-faction tuning. It is threaded through every prediction
// but currently has no effect on the output; the slot is reserved.
type FactionID string

// FactionNeutral is the default faction for unowned entities.
const FactionNeutral FactionID = "neutral"
