package scheduler

import (
	"testing"
	"time"
)

func TestDriftScheduleShrinksDelayByDrift(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	sched := newDriftSchedule(start, time.Second)

	// First tick lands 300ms late: the next delay pulls back toward the grid.
	delay, resynced := sched.next(start.Add(1300 * time.Millisecond))
	if resynced {
		t.Fatal("unexpected resync")
	}
	if delay != 700*time.Millisecond {
		t.Fatalf("delay = %v, want 700ms", delay)
	}
}

func TestDriftScheduleResyncsAfterSuspension(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	sched := newDriftSchedule(start, time.Second)

	// 1500ms of drift exceeds the interval: resync to now, no tick burst.
	now := start.Add(2500 * time.Millisecond)
	delay, resynced := sched.next(now)
	if !resynced {
		t.Fatal("expected resync")
	}
	if delay != time.Second {
		t.Fatalf("delay after resync = %v, want 1s", delay)
	}
	if !sched.start.Equal(now) {
		t.Fatalf("grid start = %v, want %v", sched.start, now)
	}

	// The following tick measures against the fresh grid, not the old one.
	delay, resynced = sched.next(now.Add(1100 * time.Millisecond))
	if resynced {
		t.Fatal("unexpected second resync")
	}
	if delay != 900*time.Millisecond {
		t.Fatalf("delay = %v, want 900ms", delay)
	}
}

func TestDriftScheduleNeverReturnsNegativeDelay(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	sched := newDriftSchedule(start, time.Second)
	delay, _ := sched.next(start.Add(2 * time.Second))
	if delay < 0 {
		t.Fatalf("negative delay %v", delay)
	}
}

func TestDriftScheduleEarlyTickStretchesDelay(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	sched := newDriftSchedule(start, time.Second)
	delay, resynced := sched.next(start.Add(800 * time.Millisecond))
	if resynced {
		t.Fatal("unexpected resync")
	}
	if delay != 1200*time.Millisecond {
		t.Fatalf("delay = %v, want 1.2s", delay)
	}
}

func TestTickerDeliversOrderedTicks(t *testing.T) {
	ticker := NewTicker(10*time.Millisecond, 8)
	ticker.Start()
	defer ticker.Stop()

	var last Tick
	for i := 0; i < 3; i++ {
		tick := waitTick(t, ticker.C(), time.Second)
		if i > 0 {
			if tick.Seq <= last.Seq {
				t.Fatalf("sequence went backward: %d after %d", tick.Seq, last.Seq)
			}
			if tick.At.Before(last.At) {
				t.Fatalf("tick time went backward: %v after %v", tick.At, last.At)
			}
		}
		last = tick
	}
}

func TestTickerStopClosesChannel(t *testing.T) {
	ticker := NewTicker(5*time.Millisecond, 1)
	ticker.Start()
	ticker.Stop()
	ticker.Stop() // second Stop is a no-op

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-ticker.C():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after Stop")
		}
	}
}

func waitTick(t *testing.T, ch <-chan Tick, timeout time.Duration) Tick {
	t.Helper()
	select {
	case tick := <-ch:
		return tick
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for tick")
		return Tick{}
	}
}
