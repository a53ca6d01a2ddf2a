package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jrazmi/taskd/sdk/logger"
)

type ctxKey struct{}

func TestLogger_TraceIDAndService(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "DEBUG", Format: "json"},
		logger.WithOutput(&buf),
		logger.WithService("TASKD"),
		logger.WithTraceID(func(ctx context.Context) string {
			v, _ := ctx.Value(ctxKey{}).(string)
			return v
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-123")
	log.InfoContext(ctx, "hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec["trace_id"] != "trace-123" {
		t.Errorf("trace_id = %v, want trace-123", rec["trace_id"])
	}
	if rec["service"] != "TASKD" {
		t.Errorf("service = %v, want TASKD", rec["service"])
	}
	if rec["k"] != "v" {
		t.Errorf("k = %v, want v", rec["k"])
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "WARN", Format: "text"}, logger.WithOutput(&buf))

	log.InfoContext(context.Background(), "dropped")
	log.WarnContext(context.Background(), "kept 1")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record written at WARN level: %q", out)
	}
	if !strings.Contains(out, "kept 1") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestLogger_Source(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Level: "INFO", Format: "json"},
			logger.WithOutput(&buf),
			logger.WithSource(enabled),
		)
		log.InfoContext(context.Background(), "hello")

		var rec map[string]any
		if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
			t.Fatalf("decode log line %q: %v", buf.String(), err)
		}
		src, ok := rec["source"].(map[string]any)
		if ok != enabled {
			t.Fatalf("WithSource(%v): source = %v", enabled, rec["source"])
		}
		if enabled && !strings.HasSuffix(src["file"].(string), "logger_test.go") {
			t.Errorf("source file = %v", src["file"])
		}
	}
}
