package server

import "time"

const (
	writeWait         = 10 * time.Second
	tickRate          = 15 // ticks per second
	heartbeatInterval = 2 * time.Second
	disconnectAfter   = 3 * heartbeatInterval

	shipHalf = 14.0

	predictionHorizon = 2.0 // seconds of forecast per turret request

	projectileSpeed     = 420.0 // world units per second
	turretRangeLimit    = 700.0
	turretCooldownTicks = 30
	shotLifetimeTicks   = 45

	// aimSlack tolerates the mismatch between sampled forecast times and the
	// exact projectile flight time.
	aimSlack = 0.15

	// minAimConfidence gates firing on how far into the forecast the chosen
	// intercept lies.
	minAimConfidence = 0.4
)
