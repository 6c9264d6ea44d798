package server

import (
	"context"
	"math/rand"
	"time"

	"drift-and-burn/server/internal/predict"
	"drift-and-burn/server/internal/telemetry"
	worldpkg "drift-and-burn/server/internal/world"
	"drift-and-burn/server/logging"
	loggingSim "drift-and-burn/server/logging/simulation"
)

type vec2 = worldpkg.Vec2

type shipState struct {
	ID       string
	Pos      vec2
	Vel      vec2
	Behavior predict.Behavior
	Faction  predict.FactionID

	// heading anchors the strafe weave so the lateral oscillation stays
	// orthogonal to one base course instead of feeding back on itself.
	heading vec2
}

type turretState struct {
	ID           string
	Pos          vec2
	readyAtTick  uint64
	lastTargetID string
}

type shotState struct {
	ID          string
	Origin      vec2
	Aim         vec2
	TargetID    string
	firedTick   uint64
	expiresTick uint64
}

// World owns the authoritative simulation state. All methods assume the
// caller serializes access; the hub holds the lock.
type World struct {
	cfg       worldpkg.Config
	ships     map[string]*shipState
	turrets   map[string]*turretState
	shots     []*shotState
	rngs      map[string]*rand.Rand
	predictor *predict.Predictor
	publisher logging.Publisher
	metrics   telemetry.Metrics
	tick      uint64
}

// NewWorld seeds a combat zone from the config. A nil predictor gets built
// from the zone geometry with seeded swarm noise.
func NewWorld(cfg worldpkg.Config, predictor *predict.Predictor, publisher logging.Publisher, metrics telemetry.Metrics) *World {
	normalized := cfg.Normalized()
	if predictor == nil {
		predictor = predict.New(
			predict.ConfigForWorld(normalized),
			predict.NewSeededNoise(normalized.Seed, "predict.swarm"),
		)
	}
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	if metrics == nil {
		metrics = telemetry.NopMetrics()
	}

	w := &World{
		cfg:       normalized,
		ships:     make(map[string]*shipState),
		turrets:   make(map[string]*turretState),
		shots:     make([]*shotState, 0),
		rngs:      make(map[string]*rand.Rand),
		predictor: predictor,
		publisher: publisher,
		metrics:   metrics,
	}

	worldpkg.SeedInitialShips(w)
	worldpkg.SeedTurrets(w)

	loggingSim.ZoneSeeded(context.Background(), w.publisher, loggingSim.ZoneSeededPayload{
		Seed:    normalized.Seed,
		Ships:   len(w.ships),
		Turrets: len(w.turrets),
	})

	return w
}

// Config implements worldpkg.ShipSpawner.
func (w *World) Config() worldpkg.Config {
	if w == nil {
		return worldpkg.DefaultConfig()
	}
	return w.cfg
}

// Dimensions implements worldpkg.ShipSpawner.
func (w *World) Dimensions() (float64, float64) {
	return worldpkg.Dimensions(w.Config())
}

// SubsystemRNG returns a cached deterministic stream for the label.
func (w *World) SubsystemRNG(label string) *rand.Rand {
	if w == nil {
		return nil
	}
	if rng, ok := w.rngs[label]; ok {
		return rng
	}
	rng := worldpkg.NewDeterministicRNG(w.cfg.Seed, label)
	w.rngs[label] = rng
	return rng
}

func (w *World) SpawnDirectAt(pos, vel vec2) { w.addShip(predict.BehaviorDirect, pos, vel) }
func (w *World) SpawnStrafeAt(pos, vel vec2) { w.addShip(predict.BehaviorStrafe, pos, vel) }
func (w *World) SpawnOrbitAt(pos, vel vec2)  { w.addShip(predict.BehaviorOrbit, pos, vel) }
func (w *World) SpawnSwarmAt(pos, vel vec2)  { w.addShip(predict.BehaviorSwarm, pos, vel) }
func (w *World) SpawnHunterAt(pos, vel vec2) { w.addShip(predict.BehaviorHunter, pos, vel) }

func (w *World) SpawnTurretAt(pos vec2) {
	if w == nil {
		return
	}
	turret := &turretState{ID: worldpkg.NewTurretID(), Pos: pos}
	w.turrets[turret.ID] = turret
}

func factionFor(behavior predict.Behavior) predict.FactionID {
	switch behavior {
	case predict.BehaviorSwarm, predict.BehaviorHunter:
		return "raiders"
	case predict.BehaviorDirect, predict.BehaviorStrafe, predict.BehaviorOrbit:
		return "navy"
	default:
		return predict.FactionNeutral
	}
}

func (w *World) addShip(behavior predict.Behavior, pos, vel vec2) *shipState {
	if w == nil {
		return nil
	}
	heading := vel.Normalized()
	if heading == (vec2{}) {
		heading = vec2{X: 1, Y: 0}
	}
	ship := &shipState{
		ID:       worldpkg.NewShipID(),
		Pos:      pos,
		Vel:      vel,
		Behavior: behavior,
		Faction:  factionFor(behavior),
		heading:  heading,
	}
	w.ships[ship.ID] = ship

	loggingSim.ShipSpawned(context.Background(), w.publisher, w.tick,
		logging.EntityRef{ID: ship.ID, Kind: logging.EntityKindShip},
		loggingSim.ShipSpawnedPayload{
			Behavior: string(behavior),
			Faction:  string(ship.Faction),
			X:        pos.X,
			Y:        pos.Y,
		})

	return ship
}

// Step advances the simulation by one fixed tick.
func (w *World) Step(ctx context.Context, now time.Time, dt float64) {
	if w == nil {
		return
	}
	w.tick++
	w.steerShips(dt)
	w.moveShips(dt)
	w.expireShots()
	w.runFireControl(ctx, now)
	w.metrics.Store("sim.tick", w.tick)
}

func (w *World) expireShots() {
	if len(w.shots) == 0 {
		return
	}
	alive := w.shots[:0]
	for _, shot := range w.shots {
		if shot.expiresTick > w.tick {
			alive = append(alive, shot)
		}
	}
	w.shots = alive
}

// Tick reports the current simulation tick.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Predictor exposes the forecast engine shared with fire control.
func (w *World) Predictor() *predict.Predictor {
	if w == nil {
		return nil
	}
	return w.predictor
}
