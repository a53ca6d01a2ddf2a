// Package tasksrepobridge contains HTTP route registration for Task
package tasksrepobridge

import (
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
	"github.com/jrazmi/taskd/infrastructure/web"
	"github.com/jrazmi/taskd/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)
	g := group.Group("", cfg.Middleware...)

	g.GET("/tasks", b.httpList)
	g.GET("/tasks/{task_id}", b.httpGetByID)
	g.POST("/tasks", b.httpCreate)
	g.PUT("/tasks/{task_id}", b.httpUpdate)
	g.DELETE("/tasks/{task_id}", b.httpDelete)
}
