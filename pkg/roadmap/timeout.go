package roadmap

import (
	"context"
	"time"
)

// raceNeutral runs fn and waits at most d for its result. On timeout, error,
// or context cancellation the neutral value is returned instead. The
// underlying call is not cancelled; its result is discarded once the consumer
// stops waiting. A zero duration waits until fn or the context finishes.
func raceNeutral[T any](ctx context.Context, d time.Duration, neutral T, fn func(context.Context) (T, error)) T {
	done := make(chan T, 1)
	go func() {
		v, err := fn(ctx)
		if err != nil {
			done <- neutral
			return
		}
		done <- v
	}()

	var timeout <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case v := <-done:
		return v
	case <-timeout:
		return neutral
	case <-ctx.Done():
		return neutral
	}
}
