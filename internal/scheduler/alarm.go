package scheduler

import (
	"sync"
	"time"

	"daytick/internal/engine"
	"daytick/internal/model"
)

// autoStopAfter bounds how long an undismissed alarm keeps ringing.
const autoStopAfter = 60 * time.Second

// Sounder loops an audible alert until stopped. Play failures are non-fatal.
type Sounder interface {
	Play() error
	Stop()
}

// WakeLock is a best-effort stay-awake hint; absence of host support must not
// affect alarm correctness.
type WakeLock interface {
	Acquire() error
	Release()
}

// Notifier posts a host-level notification. A nil or failing notifier only
// loses that channel, never the in-process alert.
type Notifier interface {
	Send(title, body string) error
}

// Alert is the blocking in-process alarm state surfaced to the UI.
type Alert struct {
	Task     model.Task
	Date     string
	RaisedAt time.Time
}

type firedKey struct {
	taskID int64
	date   string
	clock  string
}

// Alarm runs the due-check on every clock tick and owns the audible output
// and wake-lock resources while an alert is live. A (task, day, minute) key
// fires at most once, so sub-second ticks inside the same minute cannot
// refire an alarm.
type Alarm struct {
	sounder  Sounder
	wake     WakeLock
	notifier Notifier
	autoStop time.Duration

	mu       sync.Mutex
	fired    map[firedKey]struct{}
	firedDay string
	active   *Alert
	gen      uint64
	wakeHeld bool
}

func NewAlarm(sounder Sounder, wake WakeLock, notifier Notifier) *Alarm {
	return &Alarm{
		sounder:  sounder,
		wake:     wake,
		notifier: notifier,
		autoStop: autoStopAfter,
		fired:    make(map[firedKey]struct{}),
	}
}

// SetAutoStop overrides the default ring timeout. Call before the first Check.
func (a *Alarm) SetAutoStop(d time.Duration) {
	if d > 0 {
		a.autoStop = d
	}
}

// Check scans the collection for tasks whose alarm time matches the current
// minute and raises an alert for each unfired occurrence. When several tasks
// share a minute the later one replaces the earlier alert, matching the
// stop-then-start sound behavior. Returns the live alert, if any.
func (a *Alarm) Check(tasks []model.Task, now time.Time) *Alert {
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firedDay != today {
		// New day: keys from previous days can never match again.
		a.fired = make(map[firedKey]struct{})
		a.firedDay = today
	}

	for _, t := range tasks {
		if t.Time == "" || t.Time != clock {
			continue
		}
		if !engine.IsDue(t, today, today) {
			continue
		}
		if t.Completions.Has(today) {
			continue
		}
		key := firedKey{taskID: t.ID, date: today, clock: clock}
		if _, done := a.fired[key]; done {
			continue
		}
		a.fired[key] = struct{}{}
		a.fireLocked(t, today, now)
	}
	return a.activeLocked()
}

// Active returns a copy of the live alert, or nil.
func (a *Alarm) Active() *Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activeLocked()
}

// Dismiss stops the audio, releases the wake lock and clears the alert. The
// pending auto-stop for the dismissed alarm is invalidated by generation, so
// a later, unrelated alarm cannot be cancelled by it.
func (a *Alarm) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.stopLocked()
	a.active = nil
}

// Close releases all owned resources on teardown.
func (a *Alarm) Close() {
	a.Dismiss()
}

func (a *Alarm) fireLocked(t model.Task, date string, now time.Time) {
	// Replace any alert already ringing.
	a.stopLocked()
	a.gen++
	gen := a.gen
	a.active = &Alert{Task: t, Date: date, RaisedAt: now}

	if a.sounder != nil {
		// Audio failures degrade to a silent alert.
		_ = a.sounder.Play()
	}
	if a.wake != nil {
		if err := a.wake.Acquire(); err == nil {
			a.wakeHeld = true
		}
	}
	if a.notifier != nil {
		_ = a.notifier.Send("daytick", t.Text)
	}
	time.AfterFunc(a.autoStop, func() {
		a.autoDismiss(gen)
	})
}

func (a *Alarm) autoDismiss(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		// A newer alarm (or an explicit dismissal) superseded this stop.
		return
	}
	a.stopLocked()
	a.active = nil
}

func (a *Alarm) stopLocked() {
	if a.sounder != nil {
		a.sounder.Stop()
	}
	if a.wakeHeld {
		if a.wake != nil {
			a.wake.Release()
		}
		a.wakeHeld = false
	}
}

func (a *Alarm) activeLocked() *Alert {
	if a.active == nil {
		return nil
	}
	alert := *a.active
	alert.Task = a.active.Task.Clone()
	return &alert
}
