package config

import (
	"fmt"

	"github.com/jrazmi/taskd/infrastructure/web"
	"github.com/jrazmi/taskd/sdk/environment"
	"github.com/jrazmi/taskd/sdk/logger"
)

// site wide globals.
const (
	AppName   = "taskd"
	EnvPrefix = "TASKD"
	ApiRoute  = "/v1"
)

// Taskd is the overall configuration for the taskd application.
type Taskd struct {
	Server web.ServerConfig   `yaml:"server" toml:"server" json:"server"`
	HTTP   web.HandlerOptions `yaml:"http" toml:"http" json:"http"`
	Log    logger.Options     `yaml:"log" toml:"log" json:"log"`
}

// Load builds the configuration from, in increasing order of precedence,
// defaults, the config file at path (if any), .env and the process
// environment.
func Load(path string) (Taskd, error) {
	if err := environment.LoadEnv(); err != nil {
		return Taskd{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Taskd
	if err := environment.LoadFile(path, &cfg); err != nil {
		return Taskd{}, err
	}
	if err := environment.ParseEnvTags(EnvPrefix, &cfg); err != nil {
		return Taskd{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
