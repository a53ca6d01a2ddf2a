package environment_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/taskd/sdk/environment"
)

type serverConfig struct {
	Port        string        `toml:"port" yaml:"port" env:"PORT" default:":8080"`
	ReadTimeout time.Duration `toml:"read_timeout" yaml:"read_timeout" env:"READ_TIMEOUT" default:"30s"`
	Debug       bool          `toml:"debug" yaml:"debug" env:"DEBUG" default:"false"`
	Origins     []string      `toml:"origins" yaml:"origins" env:"ORIGINS" default:"*" separator:","`
}

type appConfig struct {
	Server serverConfig `toml:"server" yaml:"server"`
	Name   string       `toml:"name" yaml:"name" env:"NAME" default:"taskd"`
}

func TestParseEnvTags_Defaults(t *testing.T) {
	var cfg serverConfig
	if err := environment.ParseEnvTags("TEST_DEFAULTS", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}

	if cfg.Port != ":8080" {
		t.Errorf("Port = %q, want :8080", cfg.Port)
	}
	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want 30s", cfg.ReadTimeout)
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "*" {
		t.Errorf("Origins = %v, want [*]", cfg.Origins)
	}
}

func TestParseEnvTags_EnvironmentWins(t *testing.T) {
	t.Setenv("TEST_ENV_PORT", ":9999")
	t.Setenv("TEST_ENV_READ_TIMEOUT", "2s")
	t.Setenv("TEST_ENV_DEBUG", "true")
	t.Setenv("TEST_ENV_ORIGINS", "http://a.test, http://b.test")

	cfg := serverConfig{Port: ":7000"}
	if err := environment.ParseEnvTags("TEST_ENV", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}

	if cfg.Port != ":9999" {
		t.Errorf("Port = %q, want :9999", cfg.Port)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout = %v, want 2s", cfg.ReadTimeout)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.test" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
}

func TestParseEnvTags_KeepsExistingValues(t *testing.T) {
	cfg := serverConfig{Port: ":7000"}
	if err := environment.ParseEnvTags("TEST_KEEP", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}
	if cfg.Port != ":7000" {
		t.Errorf("Port = %q, want value already set to survive", cfg.Port)
	}
}

func TestParseEnvTags_Nested(t *testing.T) {
	t.Setenv("TEST_NESTED_PORT", ":1234")

	var cfg appConfig
	if err := environment.ParseEnvTags("TEST_NESTED", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}
	if cfg.Server.Port != ":1234" {
		t.Errorf("Server.Port = %q, want :1234", cfg.Server.Port)
	}
	if cfg.Name != "taskd" {
		t.Errorf("Name = %q, want taskd", cfg.Name)
	}
}

func TestParseEnvTags_Required(t *testing.T) {
	var cfg struct {
		Key string `env:"KEY" required:"true"`
	}
	err := environment.ParseEnvTags("TEST_REQUIRED", &cfg)
	if err == nil || !strings.Contains(err.Error(), "TEST_REQUIRED_KEY") {
		t.Fatalf("err = %v, want missing TEST_REQUIRED_KEY", err)
	}
}

func TestParseEnvTags_RejectsNonPointer(t *testing.T) {
	if err := environment.ParseEnvTags("", serverConfig{}); err == nil {
		t.Fatal("expected error for non-pointer cfg")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "taskd.toml",
			content: `name = "from-file"

[server]
port = ":6000"
read_timeout = "3s"
`,
		},
		{
			name: "yaml",
			file: "taskd.yaml",
			content: `name: from-file
server:
  port: ":6000"
  read_timeout: 3s
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			var cfg appConfig
			if err := environment.LoadFile(path, &cfg); err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if err := environment.ParseEnvTags("TEST_FILE_"+tt.name, &cfg); err != nil {
				t.Fatalf("ParseEnvTags: %v", err)
			}

			if cfg.Name != "from-file" {
				t.Errorf("Name = %q, want from-file", cfg.Name)
			}
			if cfg.Server.Port != ":6000" {
				t.Errorf("Server.Port = %q, want :6000", cfg.Server.Port)
			}
			if cfg.Server.ReadTimeout != 3*time.Second {
				t.Errorf("Server.ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
			}
			// Untouched by the file, so the default applies.
			if len(cfg.Server.Origins) != 1 || cfg.Server.Origins[0] != "*" {
				t.Errorf("Server.Origins = %v, want [*]", cfg.Server.Origins)
			}
		})
	}
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskd.ini")
	if err := os.WriteFile(path, []byte("port=1"), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg appConfig
	err := environment.LoadFile(path, &cfg)
	if !errors.Is(err, environment.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFile_EmptyPath(t *testing.T) {
	var cfg appConfig
	if err := environment.LoadFile("", &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
}
