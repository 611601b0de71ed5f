// Package config loads the vacsync YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/command"
	"github.com/vacsync/vacsync-go/pkg/discovery"
	"github.com/vacsync/vacsync-go/pkg/ledger"
	"github.com/vacsync/vacsync-go/pkg/poller"
	"github.com/vacsync/vacsync-go/pkg/session"
	"github.com/vacsync/vacsync-go/pkg/transport/mqttpush"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Device    DeviceConfig    `yaml:"device"`
	Ledger    ledger.Config   `yaml:"ledger"`
	Poller    poller.Config   `yaml:"poller"`
	Commands  command.Config  `yaml:"commands"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Discovery DiscoveryConfig `yaml:"discovery"`

	// TraceLog is the CBOR protocol trace file. Empty disables tracing.
	TraceLog string `yaml:"trace_log"`

	// StateFile keeps session-only state across restarts. Empty disables it.
	StateFile string `yaml:"state_file"`

	// MetricsAddr serves /metrics when set, e.g. ":9108".
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DeviceConfig identifies the vacuum.
type DeviceConfig struct {
	DID      string `yaml:"did"`
	Model    string `yaml:"model"`
	Firmware string `yaml:"firmware"`

	// CatalogFile replaces the built-in capability catalog.
	CatalogFile string `yaml:"catalog_file"`
}

// MQTTConfig enables cloud push delivery.
type MQTTConfig struct {
	Enabled         bool `yaml:"enabled"`
	mqttpush.Config `yaml:",inline"`
}

// DiscoveryConfig controls the startup mDNS scan.
type DiscoveryConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Interface string        `yaml:"interface"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns a configuration with sensible defaults.
func Default() Config {
	return Config{
		Device: DeviceConfig{
			DID:      "402136817",
			Model:    "dreame.vacuum.r2228o",
			Firmware: "4.3.9_1600",
		},
		Ledger:   ledger.DefaultConfig(),
		Poller:   poller.DefaultConfig(),
		Commands: command.DefaultConfig(),
		MQTT: MQTTConfig{
			Config: mqttpush.Config{ClientID: mqttpush.DefaultClientID, ConnectTimeout: mqttpush.DefaultConnectTimeout},
		},
		Discovery: DiscoveryConfig{Timeout: discovery.BrowseTimeout},
		LogLevel:  "info",
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var problems []string
	if c.Device.DID == "" {
		problems = append(problems, "device.did is required")
	}
	if c.Device.Model == "" {
		problems = append(problems, "device.model is required")
	}
	if c.Device.Firmware != "" {
		if _, err := capability.ParseFirmware(c.Device.Firmware); err != nil {
			problems = append(problems, fmt.Sprintf("device.firmware: %v", err))
		}
	}
	if c.Ledger.DiscardWindow <= 0 || c.Ledger.RestoreWindow <= 0 {
		problems = append(problems, "ledger windows must be positive")
	} else if c.Ledger.DiscardWindow >= c.Ledger.RestoreWindow {
		problems = append(problems, "ledger.discard_window must be shorter than ledger.restore_window")
	}
	if c.Poller.ChunkSize < 1 {
		problems = append(problems, "poller.chunk_size must be at least 1")
	}
	if c.MQTT.Enabled {
		if err := c.MQTT.Config.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("mqtt: %v", err))
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Session builds the session configuration, reading the catalog file if
// one is configured.
func (c *Config) Session() (session.Config, error) {
	sc := session.Config{
		DeviceID: c.Device.DID,
		Model:    c.Device.Model,
		Firmware: c.Device.Firmware,
		Ledger:   c.Ledger,
		Commands: c.Commands,
		Poller:   c.Poller,
	}
	if c.Device.CatalogFile != "" {
		blob, err := os.ReadFile(c.Device.CatalogFile)
		if err != nil {
			return session.Config{}, fmt.Errorf("read catalog: %w", err)
		}
		sc.Catalog = blob
	}
	return sc, nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
