package server

import (
	"math"

	"drift-and-burn/server/internal/predict"
	worldpkg "drift-and-burn/server/internal/world"
)

const (
	directCruiseSpeed = 120.0

	strafeCruiseSpeed    = 120.0
	strafeWeaveAmplitude = 25.0
	strafeWeaveFrequency = 0.75

	orbitCruiseSpeed = 110.0
	orbitRadialGain  = 1.4

	swarmDriftSpeed  = 60.0
	swarmJitterSpeed = 24.0

	hunterChaseSpeed = 150.0
)

// steerShips updates every ship's velocity for the current tick. This is the
// motion the predictor approximates; the two are intentionally not bit-exact.
func (w *World) steerShips(dt float64) {
	if w == nil {
		return
	}
	elapsed := float64(w.tick) / tickRate
	for _, ship := range w.ships {
		switch ship.Behavior.Resolved() {
		case predict.BehaviorStrafe:
			w.steerStrafe(ship, elapsed)
		case predict.BehaviorOrbit:
			w.steerOrbit(ship)
		case predict.BehaviorSwarm:
			w.steerSwarm(ship)
		case predict.BehaviorHunter:
			w.steerHunter(ship)
		default:
			w.steerDirect(ship)
		}
	}
}

func (w *World) steerDirect(ship *shipState) {
	if ship.Vel == (vec2{}) {
		ship.Vel = ship.heading.Scale(directCruiseSpeed)
	}
}

// steerStrafe rides the base course and weaves orthogonally. The lateral
// velocity is the derivative of the sinusoid the predictor forecasts.
func (w *World) steerStrafe(ship *shipState, elapsed float64) {
	perpendicular := vec2{X: -ship.heading.Y, Y: ship.heading.X}
	angular := 2 * math.Pi * strafeWeaveFrequency
	lateral := strafeWeaveAmplitude * angular * math.Cos(angular*elapsed)
	ship.Vel = ship.heading.Scale(strafeCruiseSpeed).Add(perpendicular.Scale(lateral))
}

// steerOrbit blends tangential cruise with a radial correction toward the
// formation ring.
func (w *World) steerOrbit(ship *shipState) {
	center := worldpkg.Center(w.cfg)
	ring := worldpkg.OrbitRadius(w.cfg)

	radial := ship.Pos.Sub(center)
	radius := radial.Length()
	if radius < 1e-6 {
		ship.Vel = vec2{X: orbitCruiseSpeed, Y: 0}
		return
	}

	radialUnit := radial.Scale(1 / radius)
	tangent := vec2{X: -radialUnit.Y, Y: radialUnit.X}
	correction := worldpkg.Clamp((ring-radius)*orbitRadialGain, -orbitCruiseSpeed, orbitCruiseSpeed)

	desired := tangent.Scale(orbitCruiseSpeed).Add(radialUnit.Scale(correction))
	ship.Vel = desired.Normalized().Scale(orbitCruiseSpeed)
}

func (w *World) steerSwarm(ship *shipState) {
	center := worldpkg.Center(w.cfg)
	toward := center.Sub(ship.Pos).Normalized()
	jitter := worldpkg.RandomUnitVector(w.SubsystemRNG("ships.swarm"))
	ship.Vel = toward.Scale(swarmDriftSpeed).Add(jitter.Scale(swarmJitterSpeed))
}

func (w *World) steerHunter(ship *shipState) {
	target, ok := w.closestTurret(ship.Pos)
	if !ok {
		w.steerDirect(ship)
		return
	}
	ship.Vel = target.Pos.Sub(ship.Pos).Normalized().Scale(hunterChaseSpeed)
}

func (w *World) closestTurret(from vec2) (*turretState, bool) {
	var best *turretState
	bestDist := math.MaxFloat64
	for _, turret := range w.turrets {
		dist := worldpkg.Distance(from, turret.Pos)
		if dist < bestDist || (dist == bestDist && (best == nil || turret.ID < best.ID)) {
			best = turret
			bestDist = dist
		}
	}
	return best, best != nil
}
