package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	requireNoError(t, err)

	if cfg.Server.Port != 8080 || cfg.Server.AllowOrigin != "*" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Store.ArrayCapacity != 100 || cfg.Store.QueueCapacity != 100 || cfg.Store.UndoCapacity != 50 {
		t.Fatalf("unexpected store capacities: %+v", cfg.Store)
	}
	if !cfg.Console.SharedStore {
		t.Fatalf("console should share the server store by default")
	}
	if cfg.Journal.Enabled || cfg.Dispatch.Enabled {
		t.Fatalf("journal and dispatcher must be opt-in")
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %q", got)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, `
server:
  port: 9090
  host: "127.0.0.1"
  static_root: "/srv/web"
store:
  array_capacity: 10
  seed_defaults: false
console:
  enabled: true
  shared_store: false
dispatch:
  enabled: true
  schedule: "*/5 * * * *"
  batch_size: 3
log:
  format: "json"
`)

	cfg, err := Load(cfgPath)
	requireNoError(t, err)

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.Store.ArrayCapacity != 10 || cfg.Store.QueueCapacity != 100 {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Store.SeedDefaults {
		t.Fatalf("seed_defaults should be false")
	}
	if !cfg.Console.Enabled || cfg.Console.SharedStore {
		t.Fatalf("unexpected console config: %+v", cfg.Console)
	}
	if cfg.Dispatch.Schedule != "*/5 * * * *" || cfg.Dispatch.BatchSize != 3 {
		t.Fatalf("unexpected dispatch config: %+v", cfg.Dispatch)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("unexpected log format %q", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgPath := writeConfig(t, `
server:
  port: 9090
`)
	t.Setenv("REMINDEX_SERVER__PORT", "7070")
	t.Setenv("REMINDEX_STORE__UNDO_CAPACITY", "5")

	cfg, err := Load(cfgPath)
	requireNoError(t, err)

	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Store.UndoCapacity != 5 {
		t.Fatalf("expected env undo capacity 5, got %d", cfg.Store.UndoCapacity)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "invalid port",
			yaml:    "server:\n  port: -1\n",
			wantErr: "invalid server.port",
		},
		{
			name:    "invalid mode",
			yaml:    "server:\n  mode: \"verbose\"\n",
			wantErr: "invalid server.mode",
		},
		{
			name:    "zero queue capacity",
			yaml:    "store:\n  queue_capacity: 0\n",
			wantErr: "store.queue_capacity must be > 0",
		},
		{
			name:    "bad cron schedule",
			yaml:    "dispatch:\n  enabled: true\n  schedule: \"nope\"\n",
			wantErr: "invalid dispatch.schedule",
		},
		{
			name:    "journal without dsn",
			yaml:    "journal:\n  enabled: true\n",
			wantErr: "journal.dsn is required",
		},
		{
			name:    "metrics path",
			yaml:    "metrics:\n  path: \"metrics\"\n",
			wantErr: "invalid metrics.path",
		},
		{
			name:    "log level",
			yaml:    "log:\n  level: \"trace\"\n",
			wantErr: "invalid log.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected %q error, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to load config file") {
		t.Fatalf("expected file load error, got %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "remindex.yaml")
	requireNoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
