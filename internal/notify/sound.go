package notify

import (
	"io"
	"sync"
	"time"
)

// beepInterval spaces the repeated bell while an alarm rings.
const beepInterval = 2 * time.Second

// Bell loops the terminal bell on a writer until stopped. Play replaces any
// loop already running, mirroring the stop-then-start behavior of the alarm.
type Bell struct {
	out io.Writer

	mu   sync.Mutex
	stop chan struct{}
}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (b *Bell) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
	stop := make(chan struct{})
	b.stop = stop
	go b.loop(stop)
	return nil
}

func (b *Bell) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *Bell) stopLocked() {
	if b.stop != nil {
		close(b.stop)
		b.stop = nil
	}
}

func (b *Bell) loop(stop chan struct{}) {
	ticker := time.NewTicker(beepInterval)
	defer ticker.Stop()
	b.ring()
	for {
		select {
		case <-ticker.C:
			b.ring()
		case <-stop:
			return
		}
	}
}

func (b *Bell) ring() {
	_, _ = b.out.Write([]byte("\a"))
}

type NoopSounder struct{}

func (NoopSounder) Play() error { return nil }
func (NoopSounder) Stop()       {}
