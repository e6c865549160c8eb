// Package app wires configuration into a running remindex process.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aevon-lab/remindex/internal/console"
	corecfg "github.com/aevon-lab/remindex/internal/core/config"
	"github.com/aevon-lab/remindex/internal/core/storage"
	"github.com/aevon-lab/remindex/internal/core/storage/postgres"
	"github.com/aevon-lab/remindex/internal/dispatch"
	"github.com/aevon-lab/remindex/internal/events"
	"github.com/aevon-lab/remindex/internal/metrics"
	"github.com/aevon-lab/remindex/internal/migrations"
	"github.com/aevon-lab/remindex/internal/reminder"
	"github.com/aevon-lab/remindex/internal/server"
	"golang.org/x/sync/errgroup"
)

// App holds the long-lived components built from one Config.
type App struct {
	cfg *corecfg.Config

	// Store backs the HTTP API and the dispatcher.
	Store *reminder.Store
	// ConsoleStore is Store unless console.shared_store is false.
	ConsoleStore *reminder.Store

	Metrics *metrics.Metrics
	journal *postgres.JournalAdapter
}

// NewLogger builds the slog logger described by cfg.
func NewLogger(cfg corecfg.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// New opens the journal when enabled, builds the stores and seeds the
// primary one.
func New(ctx context.Context, cfg *corecfg.Config) (*App, error) {
	a := &App{cfg: cfg}

	var journal storage.Journal = storage.NopJournal{}
	if cfg.Journal.Enabled {
		adapter, err := openJournal(cfg.Journal)
		if err != nil {
			return nil, err
		}
		a.journal = adapter
		journal = adapter
	} else {
		slog.Info("Mutation journal disabled by config")
	}

	opts := reminder.Options{
		ArrayCapacity: cfg.Store.ArrayCapacity,
		QueueCapacity: cfg.Store.QueueCapacity,
		UndoCapacity:  cfg.Store.UndoCapacity,
	}

	var observer reminder.Observer
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New(metrics.StatsFunc(func() reminder.Stats { return a.Store.Stats() }))
		observer = a.Metrics
	}

	a.Store = reminder.NewStore(reminder.NewCoordinator(opts), journal, observer)
	if cfg.Console.SharedStore {
		a.ConsoleStore = a.Store
	} else {
		slog.Warn("Console uses a separate store; changes are not visible over HTTP")
		a.ConsoleStore = reminder.NewStore(reminder.NewCoordinator(opts), journal, observer)
	}

	if err := a.seed(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func openJournal(cfg corecfg.JournalConfig) (*postgres.JournalAdapter, error) {
	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	if err := migrations.Run(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run journal migrations: %w", err)
	}
	adapter, err := postgres.NewJournalAdapter(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return adapter, nil
}

func (a *App) seed(ctx context.Context) error {
	if a.cfg.Store.SeedDefaults {
		a.Store.Seed(ctx, reminder.DefaultSeeds(time.Now()))
	}
	if a.cfg.Store.SeedFile != "" {
		seeds, err := reminder.LoadSeedFile(a.cfg.Store.SeedFile)
		if err != nil {
			return err
		}
		a.Store.Seed(ctx, seeds)
		slog.Info("Seed file loaded", "path", a.cfg.Store.SeedFile, "events", len(seeds))
	}
	return nil
}

// Close releases the journal connection.
func (a *App) Close() error {
	if a.journal == nil {
		return nil
	}
	return a.journal.Close()
}

// NewServer builds the HTTP server with the events API mounted.
func (a *App) NewServer() *server.Server {
	opts := server.Options{
		StaticRoot:  a.cfg.Server.StaticRoot,
		AllowOrigin: a.cfg.Server.AllowOrigin,
	}
	if a.journal != nil {
		opts.Journal = a.journal.DB()
	}
	if a.Metrics != nil {
		opts.MetricsPath = a.cfg.Metrics.Path
		opts.MetricsHandler = a.Metrics.Handler()
	}

	srv := server.New(a.cfg.Server.Addr(), a.cfg.Server.Mode, opts)
	events.NewService(a.Store, a.cfg.Server.MaxBodySizeMB).RegisterRoutes(srv.Engine)
	return srv
}

// Serve runs the HTTP server plus the dispatcher and console when enabled.
// Leaving the console stops everything.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	srv := a.NewServer()
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if a.cfg.Dispatch.Enabled {
		scheduler := dispatch.NewScheduler(a.cfg.Dispatch.Schedule, a.cfg.Dispatch.BatchSize, a.Store)
		g.Go(func() error {
			return scheduler.Start(gctx)
		})
	} else {
		slog.Info("Dispatcher disabled by config")
	}

	if a.cfg.Console.Enabled {
		g.Go(func() error {
			defer cancel()
			return console.New(a.ConsoleStore, in, out).Run(gctx)
		})
	}

	return g.Wait()
}

// RunConsole runs only the interactive console.
func (a *App) RunConsole(ctx context.Context, in io.Reader, out io.Writer) error {
	return console.New(a.ConsoleStore, in, out).Run(ctx)
}
