package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// rateLimitBuffer is added to every computed wait so the upstream window has
// definitely rolled over before the next request goes out.
const rateLimitBuffer = time.Second

// RateLimiter gates outbound generation calls to a fixed quota per rolling
// window.
type RateLimiter interface {
	// Wait blocks until a request slot is free inside the window, records
	// the request, and returns. It returns early only if ctx is done.
	Wait(ctx context.Context) error
}

// slidingWindowLimiter keeps the timestamps of recent requests and admits a
// new one only when fewer than limit fall inside the trailing window.
type slidingWindowLimiter struct {
	mu         sync.Mutex
	timestamps []time.Time
	limit      int
	window     time.Duration
	buffer     time.Duration
	now        func() time.Time
}

func NewSlidingWindowLimiter(limit int, window time.Duration) RateLimiter {
	return &slidingWindowLimiter{
		limit:  limit,
		window: window,
		buffer: rateLimitBuffer,
		now:    time.Now,
	}
}

func (l *slidingWindowLimiter) Wait(ctx context.Context) error {
	for {
		wait, admitted := l.reserve()
		if admitted {
			return nil
		}

		log.Info().Dur("wait", wait).Msg("Rate limit reached, waiting for window to roll over")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve prunes expired timestamps and either records the request
// (admitted=true) or reports how long the caller must wait for the oldest
// in-window request to expire.
func (l *slidingWindowLimiter) reserve() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.timestamps[:0]
	for _, ts := range l.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.timestamps = kept

	if len(l.timestamps) < l.limit {
		l.timestamps = append(l.timestamps, now)
		return 0, true
	}

	oldest := l.timestamps[0]
	wait := l.window - now.Sub(oldest) + l.buffer
	if wait < l.buffer {
		wait = l.buffer
	}
	return wait, false
}
