package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"tabsync/internal/config"
	"tabsync/internal/eventbus"
	"tabsync/internal/telemetry"
	"tabsync/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath  string
		orientation string
		layout      string
		logPath     string
		watch       bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the TOML configuration file")
	flag.StringVar(&orientation, "orientation", "", "List orientation: vertical or horizontal")
	flag.StringVar(&layout, "layout", "", "List layout: linear or grid")
	flag.StringVar(&logPath, "log", "", "Log file (defaults to the configured log file)")
	flag.BoolVar(&watch, "watch", false, "Reload the configuration when the file changes")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceAt(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	overrides := config.NewOverrides(orientation, layout)
	overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid options: %v\n", err)
		os.Exit(2)
	}

	// Set up logging
	if logPath == "" {
		logPath = cfg.LogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s", configSvc.Path())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	recorder, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		log.Printf("Telemetry disabled: %v", err)
	}
	recorder.Attach(bus)

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		log.Printf("Error creating UI model: %v", err)
		fmt.Printf("Error creating UI model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)
	uiModel.SetConfigService(configSvc)

	// Forward events the UI reports on
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		// Saved settings are the user's choice now
		overrides.Clear()
		forward(e)
	})

	g, gctx := errgroup.WithContext(ctx)
	if watch {
		watcher, err := config.NewWatcher(configSvc.Path(), config.DefaultDebounce, func() {
			reloaded, err := configSvc.LoadFromPath(configSvc.Path())
			if err != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "Config reload failed", Err: err})
				return
			}
			overrides.Apply(reloaded)
			log.Printf("Config reloaded from %s", configSvc.Path())
			p.Send(ui.ConfigReloadedMsg{Config: reloaded})
		})
		if err != nil {
			log.Printf("Config watcher disabled: %v", err)
		} else {
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	// Quit the program when the context is cancelled by a signal
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	// Run the UI
	log.Printf("Starting UI...")
	_, runErr := p.Run()
	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("Background task failed: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), telemetry.ShutdownTimeout)
	defer shutdownCancel()
	if err := recorder.Shutdown(shutdownCtx); err != nil {
		log.Printf("Telemetry shutdown failed: %v", err)
	}

	if runErr != nil {
		log.Printf("Error running program: %v", runErr)
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
