package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrazmi/taskd/app/taskd/api"
	"github.com/jrazmi/taskd/app/taskd/config"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskd/infrastructure/web"
	"github.com/jrazmi/taskd/sdk/logger"
	"github.com/jrazmi/taskd/sdk/telemetry"
)

var (
	flagPort            string
	flagShutdownTimeout time.Duration
	flagLogSource       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "listen address, e.g. :8080 (overrides config)")
	serveCmd.Flags().DurationVar(&flagShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown limit (overrides config)")
	serveCmd.Flags().BoolVar(&flagLogSource, "log-source", false, "annotate log records with the calling file and line")
	serveCmd.Flags().SetNormalizeFunc(underscoreToDash)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Log,
		logger.WithTraceID(telemetry.TraceID),
		logger.WithService(config.AppName),
		logger.WithSource(flagLogSource),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		return err
	}
	return nil
}

func run(ctx context.Context, log *logger.Logger, cfg config.Taskd) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	repos := api.Repositories{
		Tasks: tasksrepo.NewRepository(log, tasksmemstore.NewStore()),
	}

	handler := api.NewHandler(api.Config{
		Build:        build,
		Log:          log,
		HTTP:         cfg.HTTP,
		EnableDebug:  cfg.Server.EnableDebug,
		Repositories: repos,
	})

	opts := []web.ServerOption{
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
		web.WithPort(flagPort),
	}
	if flagShutdownTimeout > 0 {
		opts = append(opts, web.WithShutdownTimeout(flagShutdownTimeout))
	}
	server := web.NewServer(cfg.Server, opts...)

	log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr, "debug", cfg.Server.EnableDebug)

	if err := server.Run(ctx); err != nil {
		return err
	}

	log.InfoContext(context.WithoutCancel(ctx), "shutdown", "status", "shutdown complete")
	return nil
}
