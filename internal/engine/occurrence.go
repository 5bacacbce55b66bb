// Package engine decides when tasks are visible, composes the ordered day and
// week views, applies per-day mutations, and derives completion history.
// Everything here is pure: functions take the collection and return new
// values, never mutating shared state.
package engine

import (
	"daytick/internal/dates"
	"daytick/internal/model"
)

// IsDue reports whether the task occurs on date. The today argument anchors
// the one-time rollover rule: an uncompleted one-time task from a past day
// keeps surfacing on the current day only, not on arbitrary future days.
//
// A hidden date is a hard override; hiding day D says nothing about D-1 or
// D+1, and completion alone never suppresses visibility except through the
// rollover rule.
func IsDue(t model.Task, date, today string) bool {
	if !dates.Valid(date) {
		return false
	}
	if t.HiddenDates.Has(date) {
		return false
	}
	switch t.Type {
	case model.TaskTypeOneTime:
		if date == t.DateCreated {
			return true
		}
		return date == today && t.DateCreated < today && !t.Completions.Has(t.DateCreated)
	case model.TaskTypeRecurring:
		return t.DateCreated <= date
	case model.TaskTypeWeekly:
		if t.DateCreated > date {
			return false
		}
		wd, err := dates.Weekday(date)
		if err != nil {
			return false
		}
		return wd == t.Weekday()
	default:
		return false
	}
}
