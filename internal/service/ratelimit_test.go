package service

import (
	"context"
	"testing"
	"time"
)

// fakeClock lets tests drive the limiter's view of time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(limit int, window time.Duration, clock *fakeClock) *slidingWindowLimiter {
	return &slidingWindowLimiter{
		limit:  limit,
		window: window,
		buffer: time.Second,
		now:    clock.now,
	}
}

func TestSlidingWindowLimiter_AdmitsUnderLimit(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := newTestLimiter(14, time.Minute, clock)

	for i := 0; i < 14; i++ {
		wait, admitted := l.reserve()
		if !admitted {
			t.Fatalf("request %d: expected admission, got wait %v", i+1, wait)
		}
		clock.advance(time.Second)
	}
}

func TestSlidingWindowLimiter_DelaysWhenWindowFull(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := newTestLimiter(14, time.Minute, clock)

	// Fill the window, one request per second.
	for i := 0; i < 14; i++ {
		if _, admitted := l.reserve(); !admitted {
			t.Fatalf("request %d unexpectedly rejected", i+1)
		}
		clock.advance(time.Second)
	}

	// 14 requests recorded, 14 seconds elapsed since the oldest. The 15th
	// must wait for the oldest to leave the window, plus the safety buffer.
	wait, admitted := l.reserve()
	if admitted {
		t.Fatal("15th request must not be admitted inside a full window")
	}
	want := time.Minute - 14*time.Second + time.Second
	if wait != want {
		t.Fatalf("wait = %v, want %v", wait, want)
	}
}

func TestSlidingWindowLimiter_AdmitsAfterWindowRollsOver(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := newTestLimiter(14, time.Minute, clock)

	for i := 0; i < 14; i++ {
		if _, admitted := l.reserve(); !admitted {
			t.Fatalf("request %d unexpectedly rejected", i+1)
		}
	}

	clock.advance(61 * time.Second)
	if _, admitted := l.reserve(); !admitted {
		t.Fatal("expected immediate admission after the window rolled over")
	}
}

func TestSlidingWindowLimiter_WaitBlocksUntilSlotFree(t *testing.T) {
	l := &slidingWindowLimiter{
		limit:  1,
		window: 40 * time.Millisecond,
		buffer: 5 * time.Millisecond,
		now:    time.Now,
	}

	ctx := context.Background()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	start := time.Now()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("second Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("second Wait returned after %v, expected at least the window (40ms)", elapsed)
	}
}

func TestSlidingWindowLimiter_WaitHonorsContext(t *testing.T) {
	l := &slidingWindowLimiter{
		limit:  1,
		window: time.Minute,
		buffer: time.Second,
		now:    time.Now,
	}

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}
