package server

import (
	"context"
	"testing"
	"time"

	"drift-and-burn/server/internal/predict"
)

func TestChooseAimPointLeadsAStationaryTarget(t *testing.T) {
	predictor := predict.New(predict.DefaultConfig(), predict.ZeroNoise{})
	forecast := predictor.Predict(predict.Input{
		Pos:      vec2{X: 100, Y: 540},
		Behavior: predict.BehaviorDirect,
		Horizon:  predictionHorizon,
	})

	origin := vec2{X: 200, Y: 540}
	aim, leadTime, confidence, ok := chooseAimPoint(origin, forecast, predictionHorizon)
	if !ok {
		t.Fatalf("expected a firing solution on a stationary target")
	}
	if aim != (vec2{X: 100, Y: 540}) {
		t.Fatalf("expected aim at the target, got %v", aim)
	}
	if leadTime < 0 || leadTime > predictionHorizon {
		t.Fatalf("lead time %v outside horizon", leadTime)
	}
	if confidence < minAimConfidence {
		t.Fatalf("accepted solution below the confidence gate: %.3f", confidence)
	}
}

func TestChooseAimPointRejectsEmptyForecast(t *testing.T) {
	if _, _, _, ok := chooseAimPoint(vec2{}, predict.Result{}, predictionHorizon); ok {
		t.Fatalf("expected no solution from an empty forecast")
	}
}

func TestChooseAimPointHoldsOnFleeingTarget(t *testing.T) {
	predictor := predict.New(predict.DefaultConfig(), predict.ZeroNoise{})
	forecast := predictor.Predict(predict.Input{
		Pos:      vec2{X: 650, Y: 540},
		Vel:      vec2{X: 300},
		Behavior: predict.BehaviorDirect,
		Horizon:  predictionHorizon,
	})

	origin := vec2{X: 0, Y: 540}
	if _, _, _, ok := chooseAimPoint(origin, forecast, predictionHorizon); ok {
		t.Fatalf("expected no reachable intercept on a target outrunning the projectile")
	}
}

func TestChooseAimPointStopsAtConfidenceGate(t *testing.T) {
	forecast := predict.Result{
		Behavior: predict.BehaviorDirect,
		Samples: []predict.Sample{
			{Pos: vec2{X: 10, Y: 10}, Confidence: 0.3},
			{Pos: vec2{X: 10, Y: 10}, Confidence: 0.2},
		},
	}
	if _, _, _, ok := chooseAimPoint(vec2{X: 10, Y: 10}, forecast, predictionHorizon); ok {
		t.Fatalf("expected the confidence gate to end the search")
	}
}

func TestFireControlSpawnsShotsAndRespectsCooldown(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	turret := &turretState{ID: "turret-1", Pos: vec2{X: 200, Y: 540}}
	w.turrets[turret.ID] = turret
	ship := placeShip(w, "ship-1", predict.BehaviorDirect, vec2{X: 100, Y: 540}, vec2{X: 100})

	now := time.Now()
	w.Step(context.Background(), now, 1.0/tickRate)

	if len(w.shots) != 1 {
		t.Fatalf("expected one shot after first tick, got %d", len(w.shots))
	}
	shot := w.shots[0]
	if shot.TargetID != ship.ID {
		t.Fatalf("expected shot at %s, got %s", ship.ID, shot.TargetID)
	}
	if turret.readyAtTick != w.Tick()+turretCooldownTicks {
		t.Fatalf("expected cooldown until tick %d, got %d", w.Tick()+turretCooldownTicks, turret.readyAtTick)
	}

	w.Step(context.Background(), now.Add(time.Second/tickRate), 1.0/tickRate)
	if len(w.shots) != 1 {
		t.Fatalf("turret fired during cooldown: %d shots", len(w.shots))
	}
}

func TestFireControlHoldsFireWithoutAnIntercept(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	turret := &turretState{ID: "turret-1", Pos: vec2{X: 14, Y: 540}}
	w.turrets[turret.ID] = turret
	placeShip(w, "ship-1", predict.BehaviorDirect, vec2{X: 660, Y: 540}, vec2{X: 300})

	w.Step(context.Background(), time.Now(), 1.0/tickRate)

	if len(w.shots) != 0 {
		t.Fatalf("expected hold fire, got %d shots", len(w.shots))
	}
	if turret.readyAtTick != 0 {
		t.Fatalf("hold fire should not start a cooldown, readyAtTick=%d", turret.readyAtTick)
	}
}

func TestShotsExpireAfterLifetime(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	turret := &turretState{ID: "turret-1", Pos: vec2{X: 200, Y: 540}}
	w.turrets[turret.ID] = turret
	ship := placeShip(w, "ship-1", predict.BehaviorDirect, vec2{X: 100, Y: 540}, vec2{X: 100})

	now := time.Now()
	w.Step(context.Background(), now, 1.0/tickRate)
	if len(w.shots) != 1 {
		t.Fatalf("expected one shot, got %d", len(w.shots))
	}

	delete(w.ships, ship.ID)
	for i := 0; i < shotLifetimeTicks+1; i++ {
		now = now.Add(time.Second / tickRate)
		w.Step(context.Background(), now, 1.0/tickRate)
	}
	if len(w.shots) != 0 {
		t.Fatalf("expected shots to expire, %d remain", len(w.shots))
	}
}
