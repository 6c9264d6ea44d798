package server

import worldpkg "drift-and-burn/server/internal/world"

// moveShips integrates velocities and keeps every hull inside the zone.
// Ships reflect off the boundary; their base heading flips with them so
// strafers and cruisers patrol instead of grinding along the wall.
func (w *World) moveShips(dt float64) {
	if w == nil {
		return
	}
	width, height := w.Dimensions()

	for _, ship := range w.ships {
		ship.Pos.X += ship.Vel.X * dt
		ship.Pos.Y += ship.Vel.Y * dt

		if ship.Pos.X < shipHalf {
			ship.Pos.X = shipHalf
			ship.Vel.X = -ship.Vel.X
			ship.heading.X = -ship.heading.X
		} else if ship.Pos.X > width-shipHalf {
			ship.Pos.X = width - shipHalf
			ship.Vel.X = -ship.Vel.X
			ship.heading.X = -ship.heading.X
		}

		if ship.Pos.Y < shipHalf {
			ship.Pos.Y = shipHalf
			ship.Vel.Y = -ship.Vel.Y
			ship.heading.Y = -ship.heading.Y
		} else if ship.Pos.Y > height-shipHalf {
			ship.Pos.Y = height - shipHalf
			ship.Vel.Y = -ship.Vel.Y
			ship.heading.Y = -ship.heading.Y
		}

		ship.Pos.X = worldpkg.Clamp(ship.Pos.X, shipHalf, width-shipHalf)
		ship.Pos.Y = worldpkg.Clamp(ship.Pos.Y, shipHalf, height-shipHalf)
	}
}
