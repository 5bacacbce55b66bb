package engine

import (
	"errors"

	"daytick/internal/dates"
	"daytick/internal/model"
)

var ErrInvalidDirection = errors.New("engine: move direction must be +1 or -1")

// Patch carries field replacements for EditFields. Nil fields are left
// untouched.
type Patch struct {
	Text        *string
	Type        *model.TaskType
	Category    *model.Category
	DateCreated *string
	WeeklyDay   *int
	Time        *string
	Notes       *string
}

// ToggleCompletion flips the completion mark for one day. Applying it twice
// with the same day returns the task to its original state.
func ToggleCompletion(t model.Task, date string) model.Task {
	out := t.Clone()
	if out.Completions.Has(date) {
		out.Completions = out.Completions.Remove(date)
	} else {
		out.Completions = out.Completions.Add(date)
	}
	return out
}

// HideForDate suppresses a single day's occurrence without deleting the task
// record. A hidden occurrence cannot remain done, so the completion mark for
// that day is stripped as well.
func HideForDate(t model.Task, date string) model.Task {
	out := t.Clone()
	out.HiddenDates = out.HiddenDates.Add(date)
	out.Completions = out.Completions.Remove(date)
	return out
}

// MoveOccurrence shifts a task's occurrence on fromDate one calendar day
// forward or backward, rolling over month and year boundaries. The source day
// is hidden and un-completed; the landing day is un-hidden if it had been
// hidden before. One-time tasks physically relocate (their DateCreated moves
// to the landing day); recurring and weekly tasks recur regardless, so only
// the fromDate occurrence is hidden.
func MoveOccurrence(t model.Task, fromDate string, direction int) (model.Task, error) {
	if direction != 1 && direction != -1 {
		return t, ErrInvalidDirection
	}
	toDate, err := dates.AddDays(fromDate, direction)
	if err != nil {
		return t, err
	}
	out := t.Clone()
	out.HiddenDates = out.HiddenDates.Add(fromDate)
	out.HiddenDates = out.HiddenDates.Remove(toDate)
	out.Completions = out.Completions.Remove(fromDate)
	if out.Type == model.TaskTypeOneTime {
		out.DateCreated = toDate
	}
	return out, nil
}

// EditFields applies a patch to the task. Switching the type to weekly
// assigns today's day-of-week as the default weekly day when none is set;
// switching away from weekly leaves the stored day in place.
func EditFields(t model.Task, p Patch, today string) model.Task {
	out := t.Clone()
	if p.Text != nil {
		out.Text = model.NormalizeText(*p.Text)
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.DateCreated != nil {
		out.DateCreated = *p.DateCreated
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.WeeklyDay != nil {
		d := *p.WeeklyDay
		out.WeeklyDay = &d
	}
	if p.Type != nil {
		out.Type = *p.Type
		if out.Type == model.TaskTypeWeekly && out.WeeklyDay == nil {
			if wd, err := dates.Weekday(today); err == nil {
				out.WeeklyDay = &wd
			}
		}
	}
	return out
}
