package lamport

import (
	"sync"
	"testing"
)

func TestTickIncrements(t *testing.T) {
	c := New()
	if got := c.Peek(); got != 0 {
		t.Fatalf("expected fresh clock at 0, got %d", got)
	}
	if got := c.Tick(); got != 1 {
		t.Fatalf("expected first tick to return 1, got %d", got)
	}
	if got := c.Tick(); got != 2 {
		t.Fatalf("expected second tick to return 2, got %d", got)
	}
	if got := c.Peek(); got != 2 {
		t.Fatalf("Peek should not advance the clock, got %d", got)
	}
}

func TestObserveTakesMaxPlusOne(t *testing.T) {
	tests := []struct {
		name     string
		local    int64
		received int64
		want     int64
	}{
		{"received ahead", 3, 10, 11},
		{"local ahead", 10, 3, 11},
		{"equal", 5, 5, 6},
		{"received zero", 4, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for i := int64(0); i < tt.local; i++ {
				c.Tick()
			}
			if got := c.Observe(tt.received); got != tt.want {
				t.Errorf("Observe(%d) with local %d = %d, want %d", tt.received, tt.local, got, tt.want)
			}
		})
	}
}

func TestObserveNeverRegresses(t *testing.T) {
	c := New()
	c.Observe(100)
	if got := c.Observe(1); got != 102 {
		t.Fatalf("expected 102 after observing a stale timestamp, got %d", got)
	}
}

func TestConcurrentTicks(t *testing.T) {
	c := New()
	const goroutines = 10
	const ticksEach = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < ticksEach; j++ {
				c.Tick()
			}
		}()
	}
	wg.Wait()

	if got := c.Peek(); got != goroutines*ticksEach {
		t.Fatalf("expected %d after %d concurrent ticks, got %d", goroutines*ticksEach, goroutines*ticksEach, got)
	}
}

func TestConcurrentObserveMonotonic(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c.Observe(int64(i*500 + j))
			}
		}()
	}
	wg.Wait()

	// Every Observe advances by at least one, and the final value must be
	// past the largest observed timestamp.
	if got := c.Peek(); got < 4000 {
		t.Fatalf("clock fell behind observed timestamps: %d", got)
	}
}
