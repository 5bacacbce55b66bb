package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"daytick/internal/dates"
)

var (
	ErrInvalidType     = errors.New("model: invalid task type")
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidWeekday  = errors.New("model: weekly day must be between 0 and 6")
	ErrEmptyText       = errors.New("model: task text is required")
)

type TaskType string

const (
	TaskTypeOneTime   TaskType = "one-time"
	TaskTypeRecurring TaskType = "recurring"
	TaskTypeWeekly    TaskType = "weekly"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeOneTime, TaskTypeRecurring, TaskTypeWeekly:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}

// MaxTextLen caps task text at save time.
const MaxTextLen = 100

// DraftID marks a task that has not yet been admitted to the collection.
const DraftID int64 = -1

// Task is one entry of the tracked collection. For one-time tasks DateCreated
// is also the (mutable) due day; for recurring and weekly tasks it is the
// start day before which the task never appears. The identity (ID) never
// changes once a task has been admitted.
type Task struct {
	ID          int64    `json:"id"`
	Text        string   `json:"text"`
	Type        TaskType `json:"type"`
	Category    Category `json:"category"`
	DateCreated string   `json:"dateCreated"`
	Completions DateSet  `json:"completions"`
	HiddenDates DateSet  `json:"hiddenDates"`
	WeeklyDay   *int     `json:"weeklyDay,omitempty"`
	Time        string   `json:"time,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// NewDraft returns an unsaved task anchored to the given day. Drafts carry a
// negative ID until they are admitted with Admit.
func NewDraft(day string) Task {
	return Task{
		ID:          DraftID,
		Type:        TaskTypeOneTime,
		Category:    CategoryPersonal,
		DateCreated: day,
	}
}

// IsDraft reports whether the task has not yet been saved.
func (t Task) IsDraft() bool {
	return t.ID < 0
}

// Admit assigns a fresh identity derived from the creation instant. The
// caller is responsible for discarding drafts with empty text instead.
func (t Task) Admit(now time.Time) Task {
	out := t.Clone()
	out.ID = now.UnixMilli()
	out.Text = NormalizeText(out.Text)
	return out
}

// NormalizeText trims surrounding whitespace and caps the text length.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > MaxTextLen {
		return string(runes[:MaxTextLen])
	}
	return s
}

// Clone returns an independent copy of the task, including its date sets.
func (t Task) Clone() Task {
	out := t
	out.Completions = t.Completions.Clone()
	out.HiddenDates = t.HiddenDates.Clone()
	if t.WeeklyDay != nil {
		d := *t.WeeklyDay
		out.WeeklyDay = &d
	}
	return out
}

// Weekday returns the weekly day-of-week, defaulting to Sunday when unset.
func (t Task) Weekday() int {
	if t.WeeklyDay == nil {
		return 0
	}
	return *t.WeeklyDay
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if len([]rune(t.Text)) > MaxTextLen {
		return fmt.Errorf("model: task text exceeds %d characters", MaxTextLen)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if !dates.Valid(t.DateCreated) {
		return fmt.Errorf("model: invalid dateCreated %q", t.DateCreated)
	}
	if t.Type == TaskTypeWeekly {
		if t.WeeklyDay == nil {
			return errors.New("model: weekly task requires a weekly day")
		}
		if *t.WeeklyDay < 0 || *t.WeeklyDay > 6 {
			return fmt.Errorf("%w: %d", ErrInvalidWeekday, *t.WeeklyDay)
		}
	}
	if t.Time != "" && !dates.ValidClock(t.Time) {
		return fmt.Errorf("model: invalid time %q", t.Time)
	}
	return nil
}
