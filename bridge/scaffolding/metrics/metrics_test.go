package metrics_test

import (
	"context"
	"expvar"
	"testing"

	"github.com/jrazmi/taskd/bridge/scaffolding/metrics"
)

func TestCounters(t *testing.T) {
	if got := metrics.AddRequests(context.Background()); got != 0 {
		t.Errorf("AddRequests without Set = %d, want 0", got)
	}

	ctx := metrics.Set(context.Background())

	before := metrics.AddRequests(ctx)
	if after := metrics.AddRequests(ctx); after != before+1 {
		t.Errorf("requests went from %d to %d", before, after)
	}

	before = metrics.AddErrors(ctx)
	if after := metrics.AddErrors(ctx); after != before+1 {
		t.Errorf("errors went from %d to %d", before, after)
	}

	if g := metrics.AddGoroutines(ctx); g <= 0 {
		t.Errorf("goroutines = %d", g)
	}

	metrics.SetTasks(ctx, 7)
	if got := expvar.Get("tasks").String(); got != "7" {
		t.Errorf("tasks = %s, want 7", got)
	}
}
