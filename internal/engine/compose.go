package engine

import (
	"math"
	"sort"

	"daytick/internal/dates"
	"daytick/internal/model"
)

type ViewMode string

const (
	ModeDay     ViewMode = "day"
	ModeWeek    ViewMode = "week"
	ModeHistory ViewMode = "history"
)

// untimedSortKey orders tasks without a time after every timed task on the
// same effective day.
const untimedSortKey = "23:59"

// ViewResult is the ordered visible list for one render plus the completion
// percentage for the anchor day.
type ViewResult struct {
	Tasks   []model.Task
	Anchor  string
	Percent int
}

// Compose filters the collection down to the tasks visible in the requested
// view and orders them deterministically.
//
// Day and history views anchor at the given day. The week view always anchors
// at today, never at a user-selected day, and includes a task when it is due
// on any of the seven days starting there, de-duplicated by id. The
// percentage is the anchor day's completion rate in every mode; for the week
// view that is a deliberate simplification to today's rate rather than a
// seven-day aggregate.
func Compose(tasks []model.Task, mode ViewMode, anchor, today string) ViewResult {
	if mode == ModeWeek {
		anchor = today
	}

	var visible []model.Task
	switch mode {
	case ModeWeek:
		seen := make(map[int64]bool, len(tasks))
		for i := 0; i < 7; i++ {
			day, err := dates.AddDays(anchor, i)
			if err != nil {
				break
			}
			for _, t := range tasks {
				if seen[t.ID] {
					continue
				}
				if IsDue(t, day, today) {
					seen[t.ID] = true
					visible = append(visible, t)
				}
			}
		}
	default:
		for _, t := range tasks {
			if IsDue(t, anchor, today) {
				visible = append(visible, t)
			}
		}
	}

	sortVisible(visible, anchor)
	return ViewResult{
		Tasks:   visible,
		Anchor:  anchor,
		Percent: completionPercent(visible, anchor),
	}
}

// EffectiveSortDate is the day a task sorts under within a view anchored at
// anchor. It is used only for ordering, never for filtering: a long-running
// daily task sorts as the anchor day rather than its ancient start day, and a
// weekly task sorts under its next occurrence inside the seven-day window.
func EffectiveSortDate(t model.Task, anchor string) string {
	switch t.Type {
	case model.TaskTypeRecurring:
		if t.DateCreated > anchor {
			return t.DateCreated
		}
		return anchor
	case model.TaskTypeWeekly:
		wd, err := dates.Weekday(anchor)
		if err != nil {
			return t.DateCreated
		}
		day, err := dates.AddDays(anchor, dates.DaysUntilWeekday(wd, t.Weekday()))
		if err != nil {
			return t.DateCreated
		}
		return day
	default:
		return t.DateCreated
	}
}

func sortVisible(tasks []model.Task, anchor string) {
	sort.Slice(tasks, func(i, j int) bool {
		di, dj := EffectiveSortDate(tasks[i], anchor), EffectiveSortDate(tasks[j], anchor)
		if di != dj {
			return di < dj
		}
		ti, tj := timeSortKey(tasks[i]), timeSortKey(tasks[j])
		if ti != tj {
			return ti < tj
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func timeSortKey(t model.Task) string {
	if t.Time == "" {
		return untimedSortKey
	}
	return t.Time
}

func completionPercent(visible []model.Task, anchor string) int {
	if len(visible) == 0 {
		return 0
	}
	done := 0
	for _, t := range visible {
		if t.Completions.Has(anchor) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(visible))))
}
