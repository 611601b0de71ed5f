// Command vacsync runs a vacuum session against the built-in device
// simulator.
//
// It polls the simulated robot, accepts cloud pushes over MQTT when
// configured, exposes Prometheus metrics and offers an interactive console
// for sending commands.
//
// Usage:
//
//	vacsync [flags]
//
// Flags:
//
//	-config string      YAML configuration file
//	-did string         Device id (overrides the config file)
//	-model string       Device model (overrides the config file)
//	-log-level string   Log level: debug, info, warn, error
//	-protocol-log path  CBOR protocol trace file
//	-interactive        Start the interactive console (default true)
//	-discover           List vacuums found via mDNS before starting
//
// Examples:
//
//	# Simulate the default robot with a console
//	vacsync
//
//	# Use a config file and record a protocol trace
//	vacsync -config /etc/vacsync/vacsync.yaml -protocol-log /tmp/vacsync.cbor
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vacsync/vacsync-go/cmd/vacsync/interactive"
	"github.com/vacsync/vacsync-go/pkg/config"
	"github.com/vacsync/vacsync-go/pkg/discovery"
	vlog "github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/metrics"
	"github.com/vacsync/vacsync-go/pkg/persistence"
	"github.com/vacsync/vacsync-go/pkg/session"
	"github.com/vacsync/vacsync-go/pkg/transport"
	"github.com/vacsync/vacsync-go/pkg/transport/mqttpush"
)

var (
	configFile  = flag.String("config", "", "YAML configuration file")
	did         = flag.String("did", "", "Device id (overrides the config file)")
	model       = flag.String("model", "", "Device model (overrides the config file)")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
	protocolLog = flag.String("protocol-log", "", "CBOR protocol trace file (overrides the config file)")
	interact    = flag.Bool("interactive", true, "Start the interactive console")
	discover    = flag.Bool("discover", false, "List vacuums found via mDNS before starting")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	log.Println("vacsync")
	log.Println("=======")
	log.Printf("Device: %s (%s)", cfg.Device.DID, cfg.Device.Model)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *discover || cfg.Discovery.Enabled {
		listVacuums(ctx, cfg.Discovery, logger)
	}

	sessCfg, err := cfg.Session()
	if err != nil {
		log.Fatalf("Failed to prepare session: %v", err)
	}

	opts := []session.Option{session.WithLogger(logger)}

	trace, closeTrace, err := traceLogger(cfg.TraceLog, logger)
	if err != nil {
		log.Fatalf("Failed to create protocol logger: %v", err)
	}
	defer closeTrace()
	opts = append(opts, session.WithTraceLogger(trace))

	if cfg.StateFile != "" {
		opts = append(opts, session.WithStateStore(persistence.NewStateStore(cfg.StateFile)))
	}

	sim := transport.NewSimulator(cfg.Device.DID)
	sess, err := session.New(sessCfg, sim, opts...)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	sim.OnPush(sess.OnMessage)
	sess.OnError(func(err error) { logger.Warn("device unavailable", "error", err) })
	sess.OnAvailable(func() { logger.Info("device available again") })

	if err := sess.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	log.Printf("Session %s ready", sess.ID())

	if cfg.MQTT.Enabled {
		sub, err := mqttpush.New(cfg.MQTT.Config, sess.OnMessage, mqttpush.WithLogger(logger))
		if err != nil {
			log.Fatalf("Failed to create push subscriber: %v", err)
		}
		if err := sub.Connect(ctx); err != nil {
			log.Printf("Warning: push subscriber not connected: %v", err)
		}
		defer sub.Close()
	}

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, sess, cfg.Device.Model, logger)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	go func() {
		if err := sess.Run(ctx); err != nil {
			logger.Error("session stopped", "error", err)
			cancel()
		}
	}()

	if *interact {
		console, err := interactive.New(sess, sim)
		if err != nil {
			log.Fatalf("Failed to create console: %v", err)
		}
		// Keep log output from interfering with the prompt.
		log.SetOutput(console.Stdout())
		go console.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	cancel()
	if err := sess.Close(); err != nil {
		log.Printf("Error closing session: %v", err)
	}
	log.Println("Goodbye!")
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *did != "" {
		cfg.Device.DID = *did
	}
	if *model != "" {
		cfg.Device.Model = *model
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *protocolLog != "" {
		cfg.TraceLog = *protocolLog
	}
	return cfg, cfg.Validate()
}

// traceLogger mirrors trace events to slog and, when a path is set, to a
// CBOR file.
func traceLogger(path string, logger *slog.Logger) (vlog.Logger, func(), error) {
	adapter := vlog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}
	file, err := vlog.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Protocol logging to: %s", path)
	closeFn := func() {
		if n := file.Dropped(); n > 0 {
			log.Printf("Protocol log dropped %d events", n)
		}
		_ = file.Close()
	}
	return vlog.NewMultiLogger(adapter, file), closeFn, nil
}

func serveMetrics(addr string, sess *session.Session, model string, logger *slog.Logger) *http.Server {
	registry := metrics.Registry(metrics.NewCollector(sess, model))
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	log.Printf("Metrics on http://%s/metrics", addr)
	return srv
}

func listVacuums(ctx context.Context, cfg config.DiscoveryConfig, logger *slog.Logger) {
	bc := discovery.DefaultBrowserConfig()
	bc.Interface = cfg.Interface
	if cfg.Timeout > 0 {
		bc.BrowseTimeout = cfg.Timeout
	}
	browser, err := discovery.NewMDNSBrowser(bc)
	if err != nil {
		logger.Warn("discovery unavailable", "error", err)
		return
	}
	defer browser.Stop()

	log.Printf("Browsing %s for %s...", discovery.ServiceTypeMiio, bc.BrowseTimeout)
	browseCtx, done := context.WithTimeout(ctx, bc.BrowseTimeout)
	defer done()
	found, err := discovery.Collect(browseCtx, browser)
	if err != nil {
		logger.Warn("discovery failed", "error", err)
		return
	}
	if len(found) == 0 {
		log.Println("No vacuums found")
		return
	}
	for _, v := range found {
		log.Printf("  %s", v)
	}
}
