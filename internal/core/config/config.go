package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Console  ConsoleConfig  `koanf:"console"`
	Dispatch DispatchConfig `koanf:"dispatch"`
	Journal  JournalConfig  `koanf:"journal"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
	StaticRoot    string `koanf:"static_root"`
	AllowOrigin   string `koanf:"allow_origin"`
}

// StoreConfig fixes the bounded structure sizes and startup seeding.
type StoreConfig struct {
	ArrayCapacity int    `koanf:"array_capacity"`
	QueueCapacity int    `koanf:"queue_capacity"`
	UndoCapacity  int    `koanf:"undo_capacity"`
	SeedDefaults  bool   `koanf:"seed_defaults"`
	SeedFile      string `koanf:"seed_file"`
}

type ConsoleConfig struct {
	Enabled bool `koanf:"enabled"`
	// SharedStore routes the console through the HTTP server's store.
	// When false the console gets its own, disjoint store.
	SharedStore bool `koanf:"shared_store"`
}

type DispatchConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Schedule  string `koanf:"schedule"` // robfig/cron spec, e.g. "@every 1m"
	BatchSize int    `koanf:"batch_size"`
}

type JournalConfig struct {
	Enabled      bool   `koanf:"enabled"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if c.Store.ArrayCapacity <= 0 {
		return fmt.Errorf("store.array_capacity must be > 0")
	}
	if c.Store.QueueCapacity <= 0 {
		return fmt.Errorf("store.queue_capacity must be > 0")
	}
	if c.Store.UndoCapacity <= 0 {
		return fmt.Errorf("store.undo_capacity must be > 0")
	}

	if c.Dispatch.Enabled {
		if _, err := cron.ParseStandard(c.Dispatch.Schedule); err != nil {
			return fmt.Errorf("invalid dispatch.schedule %q: %w", c.Dispatch.Schedule, err)
		}
		if c.Dispatch.BatchSize <= 0 {
			return fmt.Errorf("dispatch.batch_size must be > 0")
		}
	}

	if c.Journal.Enabled {
		if strings.TrimSpace(c.Journal.DSN) == "" {
			return fmt.Errorf("journal.dsn is required when journal.enabled is true")
		}
		if c.Journal.MaxOpenConns <= 0 {
			return fmt.Errorf("journal.max_open_conns must be > 0")
		}
		if c.Journal.MaxIdleConns <= 0 {
			return fmt.Errorf("journal.max_idle_conns must be > 0")
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("invalid metrics.path %q (must start with /)", c.Metrics.Path)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be text or json)", c.Log.Format)
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and REMINDEX_
// environment variables, then validates it.
//
// REMINDEX_SERVER__PORT=9090 overrides server.port.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             8080,
		"server.host":             "0.0.0.0",
		"server.max_body_size_mb": 1,
		"server.mode":             "release",
		"server.static_root":      "./web",
		"server.allow_origin":     "*",
		"store.array_capacity":    100,
		"store.queue_capacity":    100,
		"store.undo_capacity":     50,
		"store.seed_defaults":     true,
		"store.seed_file":         "",
		"console.enabled":         false,
		"console.shared_store":    true,
		"dispatch.enabled":        false,
		"dispatch.schedule":       "@every 1m",
		"dispatch.batch_size":     10,
		"journal.enabled":         false,
		"journal.dsn":             "",
		"journal.max_open_conns":  5,
		"journal.max_idle_conns":  5,
		"journal.auto_migrate":    true,
		"metrics.enabled":         true,
		"metrics.path":            "/metrics",
		"log.level":               "info",
		"log.format":              "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("REMINDEX_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "REMINDEX_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Addr is the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
