package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRaceNeutral(t *testing.T) {
	t.Run("returns the value when fn finishes in time", func(t *testing.T) {
		got := raceNeutral(context.Background(), time.Second, -1, func(context.Context) (int, error) {
			return 42, nil
		})
		if got != 42 {
			t.Errorf("got %d, want 42", got)
		}
	})

	t.Run("returns neutral on error", func(t *testing.T) {
		got := raceNeutral(context.Background(), time.Second, -1, func(context.Context) (int, error) {
			return 42, errors.New("boom")
		})
		if got != -1 {
			t.Errorf("got %d, want neutral -1", got)
		}
	})

	t.Run("returns neutral on timeout", func(t *testing.T) {
		got := raceNeutral(context.Background(), 10*time.Millisecond, -1, func(context.Context) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 42, nil
		})
		if got != -1 {
			t.Errorf("got %d, want neutral -1", got)
		}
	})

	t.Run("returns neutral on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		got := raceNeutral(ctx, 0, -1, func(context.Context) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 42, nil
		})
		if got != -1 {
			t.Errorf("got %d, want neutral -1", got)
		}
	})

	t.Run("zero duration waits for fn", func(t *testing.T) {
		got := raceNeutral(context.Background(), 0, -1, func(context.Context) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return 42, nil
		})
		if got != 42 {
			t.Errorf("got %d, want 42", got)
		}
	})
}
