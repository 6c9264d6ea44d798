package world

import "math/rand"

const (
	spawnEdgeMargin  = 60.0
	spawnCruiseSpeed = 120.0
	spawnSwarmSpeed  = 70.0
	turretInset      = 180.0
)

// ShipSpawner exposes the world surface required for deterministic zone
// seeding.
type ShipSpawner interface {
	Config() Config
	Dimensions() (float64, float64)
	SubsystemRNG(label string) *rand.Rand

	SpawnDirectAt(pos, vel Vec2)
	SpawnStrafeAt(pos, vel Vec2)
	SpawnOrbitAt(pos, vel Vec2)
	SpawnSwarmAt(pos, vel Vec2)
	SpawnHunterAt(pos, vel Vec2)
	SpawnTurretAt(pos Vec2)
}

// SeedInitialShips populates the zone according to the per-behavior counts in
// the config. Layout is deterministic given the config seed.
func SeedInitialShips(spawner ShipSpawner) {
	if spawner == nil {
		return
	}

	cfg := spawner.Config()
	if !cfg.Ships {
		return
	}

	width, height := spawner.Dimensions()
	center := Center(cfg)
	rng := spawner.SubsystemRNG("ships.seed")

	for i := 0; i < cfg.DirectCount; i++ {
		y := RandomDistance(rng, spawnEdgeMargin, height-spawnEdgeMargin)
		spawner.SpawnDirectAt(
			Vec2{X: spawnEdgeMargin, Y: y},
			Vec2{X: spawnCruiseSpeed, Y: 0},
		)
	}

	for i := 0; i < cfg.StrafeCount; i++ {
		y := RandomDistance(rng, spawnEdgeMargin, height-spawnEdgeMargin)
		spawner.SpawnStrafeAt(
			Vec2{X: width - spawnEdgeMargin, Y: y},
			Vec2{X: -spawnCruiseSpeed, Y: 0},
		)
	}

	ring := OrbitRadius(cfg)
	for i := 0; i < cfg.OrbitCount; i++ {
		pos := RandomPointInRing(rng, center, ring*0.5, ring*1.8)
		tangent := Vec2{X: -(pos.Y - center.Y), Y: pos.X - center.X}.Normalized()
		spawner.SpawnOrbitAt(pos, tangent.Scale(spawnCruiseSpeed))
	}

	for i := 0; i < cfg.SwarmCount; i++ {
		corner := Vec2{X: spawnEdgeMargin, Y: spawnEdgeMargin}
		pos := corner.Add(RandomUnitVector(rng).Scale(RandomDistance(rng, 0, 120)))
		pos.X = Clamp(pos.X, spawnEdgeMargin, width-spawnEdgeMargin)
		pos.Y = Clamp(pos.Y, spawnEdgeMargin, height-spawnEdgeMargin)
		heading := center.Sub(pos).Normalized()
		spawner.SpawnSwarmAt(pos, heading.Scale(spawnSwarmSpeed))
	}

	for i := 0; i < cfg.HunterCount; i++ {
		pos := RandomPointInRing(rng, center, ring*1.5, ring*2.5)
		pos.X = Clamp(pos.X, spawnEdgeMargin, width-spawnEdgeMargin)
		pos.Y = Clamp(pos.Y, spawnEdgeMargin, height-spawnEdgeMargin)
		heading := center.Sub(pos).Normalized()
		spawner.SpawnHunterAt(pos, heading.Scale(spawnCruiseSpeed))
	}
}

// SeedTurrets distributes turrets over the inset corners, then fills extras
// along the zone midlines.
func SeedTurrets(spawner ShipSpawner) {
	if spawner == nil {
		return
	}

	cfg := spawner.Config()
	if !cfg.Turrets || cfg.TurretCount <= 0 {
		return
	}

	width, height := spawner.Dimensions()
	anchors := []Vec2{
		{X: turretInset, Y: turretInset},
		{X: width - turretInset, Y: turretInset},
		{X: width - turretInset, Y: height - turretInset},
		{X: turretInset, Y: height - turretInset},
		{X: width / 2, Y: turretInset},
		{X: width / 2, Y: height - turretInset},
		{X: turretInset, Y: height / 2},
		{X: width - turretInset, Y: height / 2},
	}

	count := cfg.TurretCount
	for i := 0; i < count; i++ {
		spawner.SpawnTurretAt(anchors[i%len(anchors)])
	}
}
