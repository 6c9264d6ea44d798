package gunnery

import (
	"context"

	"drift-and-burn/server/logging"
)

const (
	ShotFiredEventType      logging.EventType = "gunnery.shot_fired"
	TargetAcquiredEventType logging.EventType = "gunnery.target_acquired"
	HoldFireEventType       logging.EventType = "gunnery.hold_fire"
)

type ShotFiredPayload struct {
	ShotID     string  `json:"shotId"`
	AimX       float64 `json:"aimX"`
	AimY       float64 `json:"aimY"`
	LeadTime   float64 `json:"leadTime"`
	Confidence float64 `json:"confidence"`
	Behavior   string  `json:"behavior"`
}

func ShotFired(ctx context.Context, pub logging.Publisher, tick uint64, turret logging.EntityRef, target logging.EntityRef, payload ShotFiredPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     ShotFiredEventType,
		Tick:     tick,
		Actor:    turret,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGunnery,
		Payload:  payload,
	})
}

type TargetAcquiredPayload struct {
	Behavior       string  `json:"behavior"`
	ThreatScore    float64 `json:"threatScore"`
	Distance       float64 `json:"distance"`
	EffectiveRange float64 `json:"effectiveRange"`
}

func TargetAcquired(ctx context.Context, pub logging.Publisher, tick uint64, turret logging.EntityRef, target logging.EntityRef, payload TargetAcquiredPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     TargetAcquiredEventType,
		Tick:     tick,
		Actor:    turret,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityDebug,
		Category: logging.CategoryGunnery,
		Payload:  payload,
	})
}

type HoldFirePayload struct {
	Reason string `json:"reason"`
}

func HoldFire(ctx context.Context, pub logging.Publisher, tick uint64, turret logging.EntityRef, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     HoldFireEventType,
		Tick:     tick,
		Actor:    turret,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryGunnery,
		Payload:  HoldFirePayload{Reason: reason},
	})
}
