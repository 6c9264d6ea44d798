package logging_test

import (
	"context"
	"testing"
	"time"

	"drift-and-burn/server/logging"
	"drift-and-burn/server/logging/sinks"
)

func waitForEvents(t *testing.T, sink *sinks.MemorySink, want int) []logging.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		events := sink.Events()
		if len(events) >= want {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("sink received %d events, want %d", len(sink.Events()), want)
	return nil
}

func TestRouterForwardsToSink(t *testing.T) {
	sink := sinks.NewMemorySink()
	router, err := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{{Name: "memory", Sink: sink}})
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}
	defer router.Close(context.Background())

	router.Publish(context.Background(), logging.Event{
		Type:     "gunnery.shot_fired",
		Tick:     7,
		Actor:    logging.EntityRef{ID: "turret-1", Kind: logging.EntityKindTurret},
		Severity: logging.SeverityInfo,
	})

	events := waitForEvents(t, sink, 1)
	if events[0].Type != "gunnery.shot_fired" || events[0].Tick != 7 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if events[0].Time.IsZero() {
		t.Fatal("router did not stamp event time")
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	sink := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	router.Publish(context.Background(), logging.Event{Type: "simulation.ship_spawned", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "network.viewer_dropped", Severity: logging.SeverityWarn})

	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("sink received %d events, want 1", len(events))
	}
	if events[0].Type != "network.viewer_dropped" {
		t.Fatalf("wrong event survived the filter: %+v", events[0])
	}
}

func TestRouterAttachesConfiguredFields(t *testing.T) {
	sink := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"zone": "test-zone"}
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	router.Publish(context.Background(), logging.Event{Type: "simulation.zone_seeded", Severity: logging.SeverityInfo})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("sink received %d events, want 1", len(events))
	}
	if events[0].Extra["zone"] != "test-zone" {
		t.Fatalf("configured field missing: %+v", events[0].Extra)
	}
}

func TestWithFieldsDoesNotOverrideEventExtras(t *testing.T) {
	var captured logging.Event
	pub := logging.WithFields(logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		captured = event
	}), map[string]any{"zone": "outer"})

	pub.Publish(context.Background(), logging.Event{Type: "x"}.WithExtra("zone", "inner"))

	if captured.Extra["zone"] != "inner" {
		t.Fatalf("event extra was overridden: %+v", captured.Extra)
	}
}
