package server

import (
	"sort"

	worldpkg "drift-and-burn/server/internal/world"
)

// threatEntry scores one ship from one turret's point of view.
type threatEntry struct {
	ShipID         string
	Behavior       string
	Score          float64
	Distance       float64
	EffectiveRange float64
}

// rankThreats orders ships within engagement distance by descending threat.
// The score leans on the behavior's effective range (an erratic mover close
// by is worth more attention than a predictable one) and rewards closing
// targets. Ties break on ship ID so the ordering is deterministic.
func (w *World) rankThreats(turret *turretState) []threatEntry {
	if w == nil || turret == nil {
		return nil
	}
	cfg := w.predictor.Config()

	entries := make([]threatEntry, 0, len(w.ships))
	for _, ship := range w.ships {
		dist := worldpkg.Distance(turret.Pos, ship.Pos)
		if dist > turretRangeLimit {
			continue
		}

		effectiveRange := cfg.EffectiveRange(ship.Behavior)
		closing := 0.0
		if dist > 1e-6 {
			toTurret := turret.Pos.Sub(ship.Pos).Scale(1 / dist)
			closing = ship.Vel.X*toTurret.X + ship.Vel.Y*toTurret.Y
		}
		if closing < 0 {
			closing = 0
		}

		score := effectiveRange / (dist + 1)
		score *= 1 + closing/projectileSpeed

		entries = append(entries, threatEntry{
			ShipID:         ship.ID,
			Behavior:       string(ship.Behavior.Resolved()),
			Score:          score,
			Distance:       dist,
			EffectiveRange: effectiveRange,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ShipID < entries[j].ShipID
	})

	return entries
}
