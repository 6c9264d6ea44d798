package simulation

import (
	"context"

	"drift-and-burn/server/logging"
)

const (
	ZoneSeededEventType  logging.EventType = "simulation.zone_seeded"
	ShipSpawnedEventType logging.EventType = "simulation.ship_spawned"
)

type ZoneSeededPayload struct {
	Seed    string `json:"seed"`
	Ships   int    `json:"ships"`
	Turrets int    `json:"turrets"`
}

func ZoneSeeded(ctx context.Context, pub logging.Publisher, payload ZoneSeededPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     ZoneSeededEventType,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySimulation,
		Payload:  payload,
	})
}

type ShipSpawnedPayload struct {
	Behavior string  `json:"behavior"`
	Faction  string  `json:"faction"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

func ShipSpawned(ctx context.Context, pub logging.Publisher, tick uint64, ship logging.EntityRef, payload ShipSpawnedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     ShipSpawnedEventType,
		Tick:     tick,
		Actor:    ship,
		Severity: logging.SeverityDebug,
		Category: logging.CategorySimulation,
		Payload:  payload,
	})
}
