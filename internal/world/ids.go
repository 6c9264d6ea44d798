package world

import (
	"fmt"

	"github.com/google/uuid"
)

// NewShipID mints a collision-free ship identifier.
func NewShipID() string {
	return fmt.Sprintf("ship-%s", uuid.NewString())
}

// NewTurretID mints a collision-free turret identifier.
func NewTurretID() string {
	return fmt.Sprintf("turret-%s", uuid.NewString())
}

// NewShotID mints a collision-free shot identifier.
func NewShotID() string {
	return fmt.Sprintf("shot-%s", uuid.NewString())
}
