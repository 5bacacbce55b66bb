package engine

import (
	"daytick/internal/dates"
	"daytick/internal/model"
)

const (
	xpPerLevel   = 10
	heatmapDays  = 28
	maxHeatLevel = 4
)

// TotalXP is one point per recorded completion across the whole collection.
func TotalXP(tasks []model.Task) int {
	xp := 0
	for _, t := range tasks {
		xp += len(t.Completions)
	}
	return xp
}

// Level starts at 1 and advances every ten completions.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}

// LevelProgress is the percentage of the way through the current level,
// clamped to [0, 100].
func LevelProgress(xp int) int {
	if xp < 0 {
		xp = 0
	}
	into := xp - (Level(xp)-1)*xpPerLevel
	pct := into * 100 / xpPerLevel
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Streak counts consecutive days with at least one completion, walking
// backward from today. A streak survives an incomplete today as long as
// yesterday has a completion; a gap at both today and yesterday breaks it.
func Streak(tasks []model.Task, today string) int {
	done := make(map[string]bool)
	for _, t := range tasks {
		for _, d := range t.Completions {
			done[d] = true
		}
	}
	start := today
	if !done[start] {
		yesterday, err := dates.AddDays(today, -1)
		if err != nil || !done[yesterday] {
			return 0
		}
		start = yesterday
	}
	streak := 0
	for day := start; done[day]; {
		streak++
		prev, err := dates.AddDays(day, -1)
		if err != nil {
			break
		}
		day = prev
	}
	return streak
}

// HeatmapDay is one cell of the 28-day completion heatmap.
type HeatmapDay struct {
	Date    string
	Percent int
	Level   int
}

// Heatmap derives the completion intensity for each of the 28 days ending
// today, oldest first. Each day's percentage comes from the same day-view
// composition the rest of the app renders.
func Heatmap(tasks []model.Task, today string) []HeatmapDay {
	out := make([]HeatmapDay, 0, heatmapDays)
	for i := heatmapDays - 1; i >= 0; i-- {
		day, err := dates.AddDays(today, -i)
		if err != nil {
			continue
		}
		res := Compose(tasks, ModeDay, day, today)
		out = append(out, HeatmapDay{
			Date:    day,
			Percent: res.Percent,
			Level:   heatLevel(res.Percent),
		})
	}
	return out
}

func heatLevel(percent int) int {
	switch {
	case percent <= 0:
		return 0
	case percent <= 30:
		return 1
	case percent <= 60:
		return 2
	case percent < 100:
		return 3
	default:
		return maxHeatLevel
	}
}
