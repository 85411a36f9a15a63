package main

import (
	"fmt"
	"io"
	"log"

	"caseview/internal/config"
	"caseview/internal/engine"
	"caseview/internal/logging"
	"caseview/internal/state"
	"caseview/internal/tui"
)

// runTUI wires the configuration, preference store, engine and TUI
// together and runs the interactive session loop.
func runTUI() (retErr error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg)

	logger, err := logging.NewDebugLogger(cfg.Logging.DebugLog)
	if err != nil {
		return fmt.Errorf("setting up debug log: %w", err)
	}
	defer logger.Close()
	logging.SetDefault(logger)

	// Suppress stdlib log output while the TUI owns the terminal.
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	dbPath := cfg.State.DBPath
	if dbPath == "" {
		dbPath = state.DefaultPath()
	}
	db, err := state.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating preference store: %w", err)
	}

	steps := cfg.StepSpecs()
	pace := cfg.Engine.SimulatorPace

	app := tui.New(tui.Options{
		Steps: steps,
		Store: db,
		NewEngine: func() engine.Engine {
			return engine.NewSimulator(steps, engine.WithPace(pace))
		},
		RefreshRate:        cfg.TUI.RefreshRate,
		ExportDir:          cfg.TUI.ExportDir,
		DefaultEnvironment: cfg.Engine.Environment,
		DefaultClientID:    cfg.Engine.ClientID,
	})
	program := tui.NewProgram(app)

	// Pick up refresh-rate changes when the config file is edited.
	if err := config.Watch(func(fresh *config.Config) {
		program.Send(tui.ConfigReloadedMsg{RefreshRate: fresh.TUI.RefreshRate})
	}); err != nil {
		logging.Debugf("config watch unavailable: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// applyFlags overlays command-line flags onto the loaded configuration.
func applyFlags(cfg *config.Config) {
	if flagEnvironment != "" {
		cfg.Engine.Environment = flagEnvironment
	}
	if flagDBPath != "" {
		cfg.State.DBPath = flagDBPath
	}
	if flagDebugLog != "" {
		cfg.Logging.DebugLog = flagDebugLog
	}
}
