// Package api assembles the taskd HTTP handler.
package api

import (
	"expvar"
	"net/http"

	"github.com/jrazmi/taskd/app/taskd/config"
	"github.com/jrazmi/taskd/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskd/bridge/scaffolding/mid"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
	"github.com/jrazmi/taskd/infrastructure/web"
	"github.com/jrazmi/taskd/sdk/logger"
	"github.com/jrazmi/taskd/sdk/telemetry"
)

// Repositories represents the repositories this instance of taskd serves.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// Config carries what the handler needs.
type Config struct {
	Build        string
	Log          *logger.Logger
	HTTP         web.HandlerOptions
	EnableDebug  bool
	Repositories Repositories
}

// NewHandler builds the routed handler with the global middleware stack.
func NewHandler(cfg Config) http.Handler {
	h := web.NewWebHandler(cfg.HTTP,
		web.WithLogging(cfg.Log),
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithDefaultHeaders(map[string]string{"X-Taskd-Build": cfg.Build}),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Log),
			mid.Errors(cfg.Log),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	v1 := h.Group(config.ApiRoute)
	tasksrepobridge.AddHttpRoutes(v1, tasksrepobridge.Config{
		Log:        cfg.Log,
		Repository: cfg.Repositories.Tasks,
	})

	if cfg.EnableDebug {
		h.HandleRaw("GET /debug/vars", expvar.Handler())
	}

	return h
}
