package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryAllowsUpToMaxPerWindow(t *testing.T) {
	m := NewMemory(10, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		if !m.Allow(ctx, "client-a") {
			t.Fatalf("call %d should be allowed", i)
		}
	}
	if m.Allow(ctx, "client-a") {
		t.Error("11th call within the window should be rejected")
	}
}

func TestMemoryWindowReset(t *testing.T) {
	m := NewMemory(2, time.Minute)
	ctx := context.Background()

	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	m.Allow(ctx, "client-a")
	m.Allow(ctx, "client-a")
	if m.Allow(ctx, "client-a") {
		t.Fatal("over-limit call should be rejected")
	}

	// After the window elapses the count resets to 1.
	now = now.Add(61 * time.Second)
	if !m.Allow(ctx, "client-a") {
		t.Fatal("call after window elapsed should be allowed")
	}
	if !m.Allow(ctx, "client-a") {
		t.Fatal("second call of the fresh window should be allowed")
	}
	if m.Allow(ctx, "client-a") {
		t.Error("third call of the fresh window should be rejected")
	}
}

func TestMemoryKeysAreIndependent(t *testing.T) {
	m := NewMemory(1, time.Minute)
	ctx := context.Background()

	if !m.Allow(ctx, "client-a") {
		t.Fatal("first call for client-a should be allowed")
	}
	if !m.Allow(ctx, "client-b") {
		t.Error("client-b has its own window")
	}
	if m.Allow(ctx, "client-a") {
		t.Error("client-a is over its limit")
	}
}

// TestMemoryConcurrentIncrements verifies per-key counting does not
// undercount under concurrent requests from the same client.
func TestMemoryConcurrentIncrements(t *testing.T) {
	const max = 10
	m := NewMemory(max, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- m.Allow(ctx, "client-a")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != max {
		t.Errorf("exactly %d of 100 concurrent calls should be admitted, got %d", max, count)
	}
}
