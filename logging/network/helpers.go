package network

import (
	"context"

	"drift-and-burn/server/logging"
)

const (
	ViewerJoinedEventType  logging.EventType = "network.viewer_joined"
	ViewerDroppedEventType logging.EventType = "network.viewer_dropped"
)

func ViewerJoined(ctx context.Context, pub logging.Publisher, tick uint64, viewer logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     ViewerJoinedEventType,
		Tick:     tick,
		Actor:    viewer,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
	})
}

type ViewerDroppedPayload struct {
	Reason string `json:"reason"`
}

func ViewerDropped(ctx context.Context, pub logging.Publisher, tick uint64, viewer logging.EntityRef, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     ViewerDroppedEventType,
		Tick:     tick,
		Actor:    viewer,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  ViewerDroppedPayload{Reason: reason},
	})
}
