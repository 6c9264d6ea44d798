package server

import (
	"sort"

	"drift-and-burn/server/internal/predict"
	worldpkg "drift-and-burn/server/internal/world"
)

// SnapshotShips returns the ship states in stable ID order.
func (w *World) SnapshotShips() []Ship {
	if w == nil {
		return nil
	}
	ships := make([]Ship, 0, len(w.ships))
	for _, ship := range w.ships {
		ships = append(ships, Ship{
			ID:       ship.ID,
			X:        ship.Pos.X,
			Y:        ship.Pos.Y,
			VX:       ship.Vel.X,
			VY:       ship.Vel.Y,
			Behavior: string(ship.Behavior),
			Faction:  string(ship.Faction),
		})
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

func (w *World) SnapshotTurrets() []Turret {
	if w == nil {
		return nil
	}
	turrets := make([]Turret, 0, len(w.turrets))
	for _, turret := range w.turrets {
		turrets = append(turrets, Turret{ID: turret.ID, X: turret.Pos.X, Y: turret.Pos.Y})
	}
	sort.Slice(turrets, func(i, j int) bool { return turrets[i].ID < turrets[j].ID })
	return turrets
}

func (w *World) SnapshotShots() []Shot {
	if w == nil {
		return nil
	}
	shots := make([]Shot, 0, len(w.shots))
	for _, shot := range w.shots {
		shots = append(shots, Shot{
			ID:       shot.ID,
			OriginX:  shot.Origin.X,
			OriginY:  shot.Origin.Y,
			AimX:     shot.Aim.X,
			AimY:     shot.Aim.Y,
			TargetID: shot.TargetID,
		})
	}
	return shots
}

// SnapshotPredictions forecasts every ship currently inside some turret's
// engagement envelope, so clients can render the paths turrets are aiming
// along.
func (w *World) SnapshotPredictions() []Prediction {
	if w == nil {
		return nil
	}

	predictions := make([]Prediction, 0, len(w.ships))
	for _, ship := range w.ships {
		if !w.inAnyEngagementEnvelope(ship.Pos) {
			continue
		}
		forecast := w.predictor.Predict(predict.Input{
			Pos:      ship.Pos,
			Vel:      ship.Vel,
			Behavior: ship.Behavior,
			Faction:  ship.Faction,
			Horizon:  predictionHorizon,
		})

		samples := make([]PredictionSample, 0, len(forecast.Samples))
		for _, sample := range forecast.Samples {
			samples = append(samples, PredictionSample{
				X:          sample.Pos.X,
				Y:          sample.Pos.Y,
				Confidence: sample.Confidence,
			})
		}
		predictions = append(predictions, Prediction{
			ShipID:         ship.ID,
			Behavior:       string(forecast.Behavior),
			EffectiveRange: forecast.EffectiveRange,
			Samples:        samples,
		})
	}
	sort.Slice(predictions, func(i, j int) bool { return predictions[i].ShipID < predictions[j].ShipID })
	return predictions
}

func (w *World) inAnyEngagementEnvelope(pos vec2) bool {
	for _, turret := range w.turrets {
		if worldpkg.Distance(pos, turret.Pos) <= turretRangeLimit {
			return true
		}
	}
	return false
}

func (w *World) zoneInfo() zoneInfo {
	cfg := w.Config()
	width, height := worldpkg.Dimensions(cfg)
	return zoneInfo{
		Seed:        cfg.Seed,
		Width:       width,
		Height:      height,
		OrbitRadius: worldpkg.OrbitRadius(cfg),
	}
}
