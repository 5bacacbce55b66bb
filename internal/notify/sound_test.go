package notify

import (
	"sync"
	"testing"
	"time"
)

type countingWriter struct {
	mu sync.Mutex
	n  int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.n += len(p)
	return len(p), nil
}

func (w *countingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

func TestBellRingsImmediatelyAndStops(t *testing.T) {
	out := &countingWriter{}
	bell := NewBell(out)
	if err := bell.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for out.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if out.count() == 0 {
		t.Fatal("bell never rang")
	}

	bell.Stop()
	settled := out.count()
	time.Sleep(20 * time.Millisecond)
	if out.count() != settled {
		t.Fatal("bell kept ringing after Stop")
	}
}

func TestBellStopWithoutPlayIsSafe(t *testing.T) {
	bell := NewBell(&countingWriter{})
	bell.Stop()
	bell.Stop()
}

func TestBellPlayReplacesRunningLoop(t *testing.T) {
	out := &countingWriter{}
	bell := NewBell(out)
	if err := bell.Play(); err != nil {
		t.Fatalf("first play: %v", err)
	}
	if err := bell.Play(); err != nil {
		t.Fatalf("second play: %v", err)
	}
	deadline := time.Now().Add(time.Second)
	for out.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	bell.Stop()
	settled := out.count()
	time.Sleep(20 * time.Millisecond)
	if out.count() != settled {
		t.Fatal("orphaned bell loop survived the replacement")
	}
}
