package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/remindex/internal/app"
	corecfg "github.com/aevon-lab/remindex/internal/core/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "remindex",
		Short:         "Event reminder store with HTTP and console interfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML configuration file")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newConsoleCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, plus the dispatcher and console when enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}

func newConsoleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run only the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				return a.RunConsole(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}

// run loads config, sets up logging and signal handling, then hands a
// built App to fn.
func run(parent context.Context, opts *rootOptions, fn func(context.Context, *app.App) error) error {
	cfg, err := corecfg.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logs go to stderr so the console owns stdout.
	slog.SetDefault(app.NewLogger(cfg.Log, os.Stderr))
	slog.Info("Loaded config",
		"address", cfg.Server.Addr(),
		"journal", cfg.Journal.Enabled,
		"dispatch", cfg.Dispatch.Enabled,
		"console", cfg.Console.Enabled,
		"metrics", cfg.Metrics.Enabled)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		slog.Error("Stopped with error", "error", err)
		return err
	}

	slog.Info("Shutdown complete")
	return nil
}
