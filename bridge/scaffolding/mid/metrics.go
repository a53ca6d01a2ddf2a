package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskd/bridge/scaffolding/metrics"
	"github.com/jrazmi/taskd/infrastructure/web"
)

const goroutineSampleEvery = 1000

// Metrics updates program counters. The goroutine gauge is sampled on the
// first request and every goroutineSampleEvery requests after that.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			if n := metrics.AddRequests(ctx); n == 1 || n%goroutineSampleEvery == 0 {
				metrics.AddGoroutines(ctx)
			}

			if isError(resp) != nil {
				metrics.AddErrors(ctx)
			}

			return resp
		}
	}
}
