// Package scheduler owns the drift-corrected tick source and the alarm
// manager that raises at most one alert per task occurrence per minute.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Tick is one beat of the drift-corrected clock.
type Tick struct {
	Seq uint64
	At  time.Time
}

// driftSchedule computes the delay to the next tick against an ideal fixed
// grid. Target firing times are start + i*interval; the delay for the next
// tick shrinks by however late the current one ran. When the process was
// suspended long enough that the drift exceeds a full interval, the grid
// resynchronizes to now instead of bursting through the backlog.
type driftSchedule struct {
	start    time.Time
	interval time.Duration
	ticks    int64
}

func newDriftSchedule(start time.Time, interval time.Duration) driftSchedule {
	return driftSchedule{start: start, interval: interval}
}

func (s *driftSchedule) next(now time.Time) (time.Duration, bool) {
	s.ticks++
	expected := s.start.Add(time.Duration(s.ticks) * s.interval)
	drift := now.Sub(expected)
	if drift > s.interval {
		s.start = now
		s.ticks = 0
		return s.interval, true
	}
	delay := s.interval - drift
	if delay < 0 {
		delay = 0
	}
	return delay, false
}

// Ticker delivers one Tick per interval on its channel, correcting each delay
// for scheduling drift. Ticks are emitted from a single goroutine, so they
// arrive strictly in time order and never overlap.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	out     chan Tick
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	resyncs uint64
}

func NewTicker(interval time.Duration, bufferSize int) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Ticker{
		interval: interval,
		out:      make(chan Tick, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (t *Ticker) C() <-chan Tick {
	return t.out
}

func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	go t.loop()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stopCh)
	t.mu.Unlock()
	<-t.doneCh
}

// Dropped counts ticks discarded because the consumer fell behind.
func (t *Ticker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

// Resyncs counts grid resynchronizations after large drift.
func (t *Ticker) Resyncs() uint64 {
	return atomic.LoadUint64(&t.resyncs)
}

func (t *Ticker) loop() {
	defer close(t.doneCh)
	defer close(t.out)

	sched := newDriftSchedule(time.Now(), t.interval)
	timer := time.NewTimer(t.interval)
	defer stopTimer(timer)

	var seq uint64
	for {
		select {
		case now := <-timer.C:
			seq++
			select {
			case t.out <- Tick{Seq: seq, At: now}:
			default:
				atomic.AddUint64(&t.dropped, 1)
			}
			delay, resynced := sched.next(time.Now())
			if resynced {
				atomic.AddUint64(&t.resyncs, 1)
			}
			timer.Reset(delay)
		case <-t.stopCh:
			return
		}
	}
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
