package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/api"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/config"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/health"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/opcua"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/simulator"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
		}
	}()

	log.Info().Msg("Starting Depot Fleet Simulator")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("name", cfg.SimulatorName).
		Int("fleet_size", cfg.FleetSize).
		Int64("seed", cfg.RandomSeed).
		Bool("opcua_enabled", cfg.OPCUAEnabled).
		Int("opcua_port", cfg.OPCUAPort).
		Dur("generate_delay", cfg.GenerateDelay).
		Dur("regenerate_interval", cfg.RegenerateInterval).
		Msg("Configuration loaded")

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runtimeCfg := config.NewRuntimeConfig(cfg)
	fleetSim := simulator.NewFleetSimulator(runtimeCfg, cfg.RandomSeed)
	healthHandler := health.NewHandler(fleetSim)
	healthHandler.SetOPCUAEnabled(cfg.OPCUAEnabled)

	var opcuaServer *opcua.Server
	publish := func(snap simulator.FleetSnapshot) {
		if opcuaServer == nil {
			return
		}
		opcuaServer.UpdateNamespaceValues(core.NamespaceFleet, simulator.FleetValues(snap))
		opcuaServer.UpdateNamespaceValues(core.NamespaceDepot, simulator.DepotValues(snap, fleetSim.Layout()))
	}

	fleetSim.SetCallbacks(func(snap simulator.FleetSnapshot, took time.Duration) {
		service, bay := snap.Counts()
		log.Info().
			Str("fleetId", snap.ID).
			Int("trains", len(snap.Trains)).
			Int("service", service).
			Int("bay", bay).
			Int("assigned", len(snap.Assignments)).
			Int("unassigned", len(snap.Unassigned)).
			Dur("took", took).
			Msg("Fleet generated")
		publish(snap)
	})

	if cfg.OPCUAEnabled {
		opcuaServer, err = opcua.NewServer(cfg.OPCUAPort, cfg.SimulatorName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OPC UA server")
		}
		if err := opcuaServer.RegisterNamespace(core.NamespaceFleet, "Fleet", "Fleet readiness summary", simulator.FleetNodes()); err != nil {
			log.Fatal().Err(err).Msg("Failed to register fleet namespace")
		}
		if err := opcuaServer.RegisterNamespace(core.NamespaceDepot, "Depot", "Depot bay occupancy", simulator.DepotNodes(fleetSim.Layout())); err != nil {
			log.Fatal().Err(err).Msg("Failed to register depot namespace")
		}
		if err := opcuaServer.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to start OPC UA server")
		}
		healthHandler.SetOPCUAReady(opcuaServer.Running())
	}

	// Start HTTP server (health check + API + web UI)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler.HandleHealth)
	mux.HandleFunc("/health/live", healthHandler.HandleLive)
	mux.HandleFunc("/health/ready", healthHandler.HandleReady)

	apiHandler := api.NewHandler(cfg.SimulatorName, fleetSim, runtimeCfg)
	apiHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HealthPort),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: config.MaxGenerateDelay + 10*time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HealthPort).Msg("Starting HTTP server (health + API + web UI)")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Initial fleet
	if _, err := fleetSim.Generate(ctx); err != nil {
		log.Error().Err(err).Msg("Initial fleet generation failed")
	}

	publishTicker := time.NewTicker(cfg.PublishInterval)
	defer publishTicker.Stop()

	// A nil channel never fires, which disables periodic regeneration
	var regenerate <-chan time.Time
	if cfg.RegenerateInterval > 0 {
		regenTicker := time.NewTicker(cfg.RegenerateInterval)
		defer regenTicker.Stop()
		regenerate = regenTicker.C
	}

	log.Info().
		Dur("publish_interval", cfg.PublishInterval).
		Dur("regenerate_interval", cfg.RegenerateInterval).
		Msg("Starting publish loop")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutdown signal received")
			goto shutdown

		case <-publishTicker.C:
			snap, err := fleetSim.Snapshot()
			if err != nil {
				log.Debug().Err(err).Msg("Nothing to publish")
				continue
			}
			publish(snap)
			log.Debug().
				Str("fleetId", snap.ID).
				Int("trains", len(snap.Trains)).
				Msg("Published fleet values")

		case <-regenerate:
			if _, err := fleetSim.Generate(ctx); err != nil {
				log.Error().Err(err).Msg("Scheduled fleet generation failed")
			}
		}
	}

shutdown:
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	if opcuaServer != nil {
		if err := opcuaServer.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("OPC UA server shutdown error")
		}
	}

	log.Info().Msg("Simulator stopped")
}
