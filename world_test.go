package server

import (
	"context"
	"math"
	"sort"
	"testing"
	"time"

	"drift-and-burn/server/internal/predict"
	worldpkg "drift-and-burn/server/internal/world"
)

func newTestWorld(cfg worldpkg.Config) *World {
	return NewWorld(cfg, nil, nil, nil)
}

func emptyZoneConfig() worldpkg.Config {
	return worldpkg.Config{Seed: "test", Ships: false, Turrets: false}
}

func TestNewWorldSeedsConfiguredWings(t *testing.T) {
	w := newTestWorld(worldpkg.DefaultConfig())

	counts := make(map[predict.Behavior]int)
	for _, ship := range w.ships {
		counts[ship.Behavior]++
	}

	cfg := w.Config()
	if got := counts[predict.BehaviorDirect]; got != cfg.DirectCount {
		t.Fatalf("expected %d direct ships, got %d", cfg.DirectCount, got)
	}
	if got := counts[predict.BehaviorStrafe]; got != cfg.StrafeCount {
		t.Fatalf("expected %d strafe ships, got %d", cfg.StrafeCount, got)
	}
	if got := counts[predict.BehaviorOrbit]; got != cfg.OrbitCount {
		t.Fatalf("expected %d orbit ships, got %d", cfg.OrbitCount, got)
	}
	if got := counts[predict.BehaviorSwarm]; got != cfg.SwarmCount {
		t.Fatalf("expected %d swarm ships, got %d", cfg.SwarmCount, got)
	}
	if got := counts[predict.BehaviorHunter]; got != cfg.HunterCount {
		t.Fatalf("expected %d hunter ships, got %d", cfg.HunterCount, got)
	}
	if got := len(w.turrets); got != cfg.TurretCount {
		t.Fatalf("expected %d turrets, got %d", cfg.TurretCount, got)
	}
}

func TestNewWorldLayoutIsDeterministic(t *testing.T) {
	first := sortedPositions(newTestWorld(worldpkg.DefaultConfig()))
	second := sortedPositions(newTestWorld(worldpkg.DefaultConfig()))

	if len(first) != len(second) {
		t.Fatalf("ship counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func sortedPositions(w *World) []vec2 {
	positions := make([]vec2, 0, len(w.ships))
	for _, ship := range w.ships {
		positions = append(positions, ship.Pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].X != positions[j].X {
			return positions[i].X < positions[j].X
		}
		return positions[i].Y < positions[j].Y
	})
	return positions
}

func TestStepAdvancesTickAndKeepsShipsInBounds(t *testing.T) {
	w := newTestWorld(worldpkg.DefaultConfig())
	width, height := w.Dimensions()

	dt := 1.0 / tickRate
	now := time.Now()
	for i := 0; i < 200; i++ {
		now = now.Add(time.Second / tickRate)
		w.Step(context.Background(), now, dt)
	}

	if got := w.Tick(); got != 200 {
		t.Fatalf("expected tick 200, got %d", got)
	}
	for id, ship := range w.ships {
		if ship.Pos.X < shipHalf || ship.Pos.X > width-shipHalf ||
			ship.Pos.Y < shipHalf || ship.Pos.Y > height-shipHalf {
			t.Fatalf("ship %s escaped the zone: %v", id, ship.Pos)
		}
		if math.IsNaN(ship.Vel.X) || math.IsNaN(ship.Vel.Y) {
			t.Fatalf("ship %s velocity degenerated: %v", id, ship.Vel)
		}
	}
}

func TestStepOnEmptyZoneIsInert(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	if len(w.ships) != 0 || len(w.turrets) != 0 {
		t.Fatalf("expected empty zone, got %d ships %d turrets", len(w.ships), len(w.turrets))
	}
	w.Step(context.Background(), time.Now(), 1.0/tickRate)
	if got := w.Tick(); got != 1 {
		t.Fatalf("expected tick 1, got %d", got)
	}
}

func TestOrbitersConvergeOnTheRing(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	center := worldpkg.Center(w.Config())
	ring := worldpkg.OrbitRadius(w.Config())

	ship := w.addShip(predict.BehaviorOrbit, center.Add(vec2{X: ring * 2.5}), vec2{Y: orbitCruiseSpeed})

	dt := 1.0 / tickRate
	now := time.Now()
	for i := 0; i < 600; i++ {
		now = now.Add(time.Second / tickRate)
		w.Step(context.Background(), now, dt)
	}

	radius := worldpkg.Distance(ship.Pos, center)
	if math.Abs(radius-ring) > 40 {
		t.Fatalf("expected orbiter near ring radius %.0f, got %.1f", ring, radius)
	}
}

func TestSnapshotPredictionsOnlyCoverEngagedShips(t *testing.T) {
	w := newTestWorld(emptyZoneConfig())
	w.turrets["turret-near"] = &turretState{ID: "turret-near", Pos: vec2{X: 200, Y: 200}}

	near := w.addShip(predict.BehaviorDirect, vec2{X: 300, Y: 200}, vec2{X: 100})
	far := w.addShip(predict.BehaviorDirect, vec2{X: 1900, Y: 1060}, vec2{X: -100})

	predictions := w.SnapshotPredictions()
	if len(predictions) != 1 {
		t.Fatalf("expected one prediction, got %d", len(predictions))
	}
	if predictions[0].ShipID != near.ID {
		t.Fatalf("expected prediction for %s, got %s", near.ID, predictions[0].ShipID)
	}
	if predictions[0].ShipID == far.ID {
		t.Fatalf("out-of-envelope ship %s should not be forecast", far.ID)
	}
	if len(predictions[0].Samples) == 0 {
		t.Fatalf("expected forecast samples")
	}
	if predictions[0].EffectiveRange != predict.DefaultDirectRange {
		t.Fatalf("expected direct effective range %.0f, got %.1f",
			predict.DefaultDirectRange, predictions[0].EffectiveRange)
	}
}

func TestSnapshotShipsSortedByID(t *testing.T) {
	w := newTestWorld(worldpkg.DefaultConfig())
	ships := w.SnapshotShips()
	if len(ships) == 0 {
		t.Fatalf("expected ships in default zone")
	}
	for i := 1; i < len(ships); i++ {
		if ships[i-1].ID >= ships[i].ID {
			t.Fatalf("snapshot not sorted at %d: %s >= %s", i, ships[i-1].ID, ships[i].ID)
		}
	}
}
