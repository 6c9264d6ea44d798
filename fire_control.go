package server

import (
	"context"
	"sort"
	"time"

	"drift-and-burn/server/internal/predict"
	worldpkg "drift-and-burn/server/internal/world"
	"drift-and-burn/server/logging"
	"drift-and-burn/server/logging/gunnery"
)

// runFireControl lets every ready turret pick a target and solve a lead-aim
// point from the predictor's forecast. Turrets are processed in ID order so a
// tick resolves identically across runs with the same seed.
func (w *World) runFireControl(ctx context.Context, now time.Time) {
	if w == nil || len(w.turrets) == 0 {
		return
	}

	turretIDs := make([]string, 0, len(w.turrets))
	for id := range w.turrets {
		turretIDs = append(turretIDs, id)
	}
	sort.Strings(turretIDs)

	for _, id := range turretIDs {
		turret := w.turrets[id]
		if turret.readyAtTick > w.tick {
			continue
		}
		w.fireTurret(ctx, turret)
	}
}

func (w *World) fireTurret(ctx context.Context, turret *turretState) {
	threats := w.rankThreats(turret)
	if len(threats) == 0 {
		return
	}

	top := threats[0]
	ship, ok := w.ships[top.ShipID]
	if !ok {
		return
	}

	turretRef := logging.EntityRef{ID: turret.ID, Kind: logging.EntityKindTurret}
	targetRef := logging.EntityRef{ID: ship.ID, Kind: logging.EntityKindShip}

	if turret.lastTargetID != ship.ID {
		turret.lastTargetID = ship.ID
		gunnery.TargetAcquired(ctx, w.publisher, w.tick, turretRef, targetRef, gunnery.TargetAcquiredPayload{
			Behavior:       top.Behavior,
			ThreatScore:    top.Score,
			Distance:       top.Distance,
			EffectiveRange: top.EffectiveRange,
		})
	}

	forecast := w.predictor.Predict(predict.Input{
		Pos:      ship.Pos,
		Vel:      ship.Vel,
		Behavior: ship.Behavior,
		Faction:  ship.Faction,
		Horizon:  predictionHorizon,
	})
	w.metrics.Add("predict.calls", 1)

	aim, leadTime, confidence, ok := chooseAimPoint(turret.Pos, forecast, predictionHorizon)
	if !ok {
		gunnery.HoldFire(ctx, w.publisher, w.tick, turretRef, "no reachable intercept")
		w.metrics.Add("gunnery.hold_fire", 1)
		return
	}

	shot := &shotState{
		ID:          worldpkg.NewShotID(),
		Origin:      turret.Pos,
		Aim:         aim,
		TargetID:    ship.ID,
		firedTick:   w.tick,
		expiresTick: w.tick + shotLifetimeTicks,
	}
	w.shots = append(w.shots, shot)
	turret.readyAtTick = w.tick + turretCooldownTicks

	gunnery.ShotFired(ctx, w.publisher, w.tick, turretRef, targetRef, gunnery.ShotFiredPayload{
		ShotID:     shot.ID,
		AimX:       aim.X,
		AimY:       aim.Y,
		LeadTime:   leadTime,
		Confidence: confidence,
		Behavior:   string(forecast.Behavior),
	})
	w.metrics.Add("gunnery.shots_fired", 1)
}

// chooseAimPoint walks the forecast for the earliest sample a projectile can
// reach in time. Samples below the confidence gate end the search; beyond
// that point the forecast is too stale to aim at.
func chooseAimPoint(origin vec2, forecast predict.Result, horizon float64) (vec2, float64, float64, bool) {
	count := len(forecast.Samples)
	if count == 0 {
		return vec2{}, 0, 0, false
	}

	interval := 0.0
	if count > 1 {
		interval = horizon / float64(count-1)
	}

	for i, sample := range forecast.Samples {
		if sample.Confidence < minAimConfidence {
			break
		}
		sampleTime := float64(i) * interval
		flightTime := worldpkg.Distance(origin, sample.Pos) / projectileSpeed
		if flightTime <= sampleTime+aimSlack {
			return sample.Pos, sampleTime, sample.Confidence, true
		}
	}

	return vec2{}, 0, 0, false
}
