package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrazmi/taskd/app/taskd/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 20*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "taskd.toml")
	data := `
[server]
port = ":9000"
read_timeout = "5s"

[log]
level = "DEBUG"
`
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TASKD_LOG_FORMAT=text\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKD_PORT", ":9100")
	t.Cleanup(func() { os.Unsetenv("TASKD_LOG_FORMAT") })

	cfg, err := config.Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != ":9100" {
		t.Errorf("Port = %q, environment must win over the file", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want the file value", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %v, want the default", cfg.Server.WriteTimeout)
	}
	if cfg.Log.Level != "DEBUG" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want the .env value", cfg.Log.Format)
	}
}

func TestLoad_BadFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load("missing.toml"); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
