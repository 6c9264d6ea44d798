// Package app wires the zone server together: configuration from the
// environment, the logging router, the predictor, the hub, and the HTTP
// surface.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	server "drift-and-burn/server"
	"drift-and-burn/server/internal/predict"
	"drift-and-burn/server/internal/telemetry"
	worldpkg "drift-and-burn/server/internal/world"
	"drift-and-burn/server/journal"
	"drift-and-burn/server/logging"
	loggingSinks "drift-and-burn/server/logging/sinks"
	"drift-and-burn/server/tuning"
)

type Config struct {
	Logger telemetry.Logger
}

func Run(ctx context.Context, cfg Config) error {
	telemetryLogger := cfg.Logger
	if telemetryLogger == nil {
		telemetryLogger = telemetry.WrapLogger(log.Default())
	}

	worldCfg := worldpkg.DefaultConfig()
	if seed := os.Getenv("WORLD_SEED"); seed != "" {
		worldCfg.Seed = seed
	}
	worldCfg = worldCfg.Normalized()

	predictCfg := predict.ConfigForWorld(worldCfg)
	tuningPath := os.Getenv("TUNING_PATH")
	overrides, err := tuning.Load(tuningPath)
	if err != nil {
		telemetryLogger.Printf("ignoring tuning overrides: %v", err)
	} else {
		predictCfg = overrides.Apply(predictCfg)
	}
	predictor := predict.New(predictCfg, predict.NewSeededNoise(worldCfg.Seed, "predict.swarm"))

	logConfig := logging.DefaultConfig()
	sinks := []logging.NamedSink{
		{Name: "console", Sink: loggingSinks.NewConsoleSink(os.Stdout, logConfig.Console)},
	}
	if path := os.Getenv("LOG_JSON_PATH"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			telemetryLogger.Printf("json log sink unavailable: %v", err)
		} else {
			sinks = append(sinks, logging.NamedSink{
				Name: "json",
				Sink: loggingSinks.NewJSONSink(file, logConfig.JSON.FlushInterval),
			})
		}
	}

	router, err := logging.NewRouter(nil, logConfig, sinks)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(ctx); cerr != nil {
			telemetryLogger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	counters := logging.NewMetrics()

	var journalWriter *journal.Writer
	if path := os.Getenv("JOURNAL_PATH"); path != "" {
		journalWriter, err = journal.NewWriter(path)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() {
			if cerr := journalWriter.Close(); cerr != nil {
				telemetryLogger.Printf("failed to close journal: %v", cerr)
			}
		}()
	}

	hub := server.NewHubWithConfig(server.HubConfig{
		World:     worldCfg,
		Predictor: predictor,
		Logger:    telemetryLogger,
		Publisher: router,
		Counters:  counters,
		Journal:   journalWriter,
	})

	stop := make(chan struct{})
	go hub.RunSimulation(stop)
	defer close(stop)

	mux := http.NewServeMux()
	mux.HandleFunc("/join", hub.HandleJoin)
	mux.HandleFunc("/ws", hub.HandleWS)
	mux.HandleFunc("/diagnostics", hub.HandleDiagnostics(router))

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	telemetryLogger.Printf("zone server listening on %s (seed=%s)", addr, worldCfg.Seed)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
