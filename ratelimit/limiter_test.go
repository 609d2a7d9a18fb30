package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowsUpToLimitWithinWindow(t *testing.T) {
	l := New(3, time.Second)
	base := time.Unix(1000, 0)
	l.now = func() time.Time { return base }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := l.Reserve(ctx); err != nil {
			t.Fatalf("Reserve %d: %v", i, err)
		}
	}
}

func TestLimiterBlocksUntilWindowSlides(t *testing.T) {
	l := New(2, time.Second)
	base := time.Unix(1000, 0)
	cur := base
	l.now = func() time.Time { return cur }

	ctx := context.Background()
	if err := l.Reserve(ctx); err != nil {
		t.Fatal(err)
	}
	if err := l.Reserve(ctx); err != nil {
		t.Fatal(err)
	}

	wait, ok := l.tryReserve()
	if ok {
		t.Fatal("expected third reservation to be denied within the same window")
	}
	if wait <= 0 {
		t.Fatalf("expected positive wait, got %v", wait)
	}

	cur = base.Add(time.Second + time.Millisecond)
	if _, ok := l.tryReserve(); !ok {
		t.Fatal("expected reservation to succeed once the window has slid")
	}
}

func TestLimiterRespectsContextCancellation(t *testing.T) {
	l := New(1, time.Minute)
	base := time.Unix(1000, 0)
	l.now = func() time.Time { return base }

	ctx := context.Background()
	if err := l.Reserve(ctx); err != nil {
		t.Fatal(err)
	}

	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Reserve(cctx); err == nil {
		t.Fatal("expected canceled context to abort Reserve")
	}
}
