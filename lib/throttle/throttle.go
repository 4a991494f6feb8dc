// Package throttle paces outbound portal requests.
//
// The portal keys its bot detection on fixed-interval traffic, so every
// wait is drawn uniformly at random from a configured window instead of
// sleeping a constant duration.
package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/mazen160/go-random"
)

// Delay blocks for a uniformly random duration in [min, max], returning
// early if ctx is cancelled. A window where max <= min degenerates to a
// fixed sleep of min.
func Delay(ctx context.Context, min, max time.Duration) {
	wait := min
	if max > min {
		ms, err := random.IntRange(int(min.Milliseconds()), int(max.Milliseconds())+1)
		if err == nil {
			wait = time.Duration(ms) * time.Millisecond
		}
	}

	slog.DebugContext(ctx, "throttle", "wait", wait)

	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}
}

// Func is the delay dependency injected into the fetch pipeline so tests
// can observe waits without sleeping.
type Func func(ctx context.Context, min, max time.Duration)
