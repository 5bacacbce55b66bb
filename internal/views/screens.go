package views

import (
	"fmt"
	"strings"

	"daytick/internal/engine"
	"daytick/internal/model"
)

var categoryIcons = map[model.Category]string{
	model.CategoryPersonal: "🏠",
	model.CategoryWork:     "💼",
	model.CategoryHealth:   "💪",
	model.CategoryOther:    "📌",
}

type TaskRow struct {
	Task      model.Task
	SortDate  string
	Completed bool
	Selected  bool
}

type ListData struct {
	Title        string
	Rows         []TaskRow
	Percent      int
	ProgressView string
	ShowDates    bool
}

func RenderTaskList(th Theme, data ListData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	if data.ProgressView != "" {
		b.WriteString(fmt.Sprintf("%s %d%%\n", data.ProgressView, data.Percent))
	}
	if len(data.Rows) == 0 {
		b.WriteString(th.Muted.Render("nothing due"))
		return strings.TrimSpace(b.String())
	}
	lastDate := ""
	for _, row := range data.Rows {
		if data.ShowDates && row.SortDate != lastDate {
			b.WriteString(th.Accent.Render(row.SortDate) + "\n")
			lastDate = row.SortDate
		}
		b.WriteString(renderTaskRow(th, row) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func renderTaskRow(th Theme, row TaskRow) string {
	cursor := "  "
	if row.Selected {
		cursor = "> "
	}
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	clock := "     "
	if row.Task.Time != "" {
		clock = row.Task.Time
	}
	text := row.Task.Text
	if row.Completed {
		text = th.Done.Render(text)
	}
	line := fmt.Sprintf("%s%s %s %s %s", cursor, box, clock, categoryIcons[row.Task.Category], text)
	if row.Task.Type == model.TaskTypeRecurring {
		line += " " + th.Muted.Render("(daily)")
	}
	if row.Task.Type == model.TaskTypeWeekly {
		line += " " + th.Muted.Render("(weekly)")
	}
	return line
}

type DetailData struct {
	Task          model.Task
	NotesRendered string
}

func RenderDetail(th Theme, data DetailData) string {
	t := data.Task
	var b strings.Builder
	b.WriteString(th.Header.Render(t.Text) + "\n")
	b.WriteString(fmt.Sprintf("type: %s   category: %s\n", t.Type, t.Category))
	b.WriteString("date: " + t.DateCreated + "\n")
	if t.Time != "" {
		b.WriteString("alarm: " + t.Time + "\n")
	}
	if t.Type == model.TaskTypeWeekly {
		b.WriteString("every: " + weekdayName(t.Weekday()) + "\n")
	}
	if len(t.Completions) > 0 {
		b.WriteString(fmt.Sprintf("completed %d time(s), last on %s\n", len(t.Completions), t.Completions[len(t.Completions)-1]))
	}
	if data.NotesRendered != "" {
		b.WriteString("\n" + data.NotesRendered)
	}
	return strings.TrimSpace(b.String())
}

type HistoryData struct {
	Level        int
	XP           int
	ProgressView string
	ProgressPct  int
	Streak       int
	Cells        []engine.HeatmapDay
	DrilldownDay string
	Drilldown    string
}

func RenderHistory(th Theme, data HistoryData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("level %d  ·  %d completions\n", data.Level, data.XP))
	if data.ProgressView != "" {
		b.WriteString(fmt.Sprintf("%s %d%% to next level\n", data.ProgressView, data.ProgressPct))
	}
	streak := fmt.Sprintf("streak: %d day(s)", data.Streak)
	if data.Streak > 0 {
		streak = "🔥 " + streak
	}
	b.WriteString(streak + "\n\n")
	b.WriteString("last 28 days:\n")
	b.WriteString(renderHeatmap(th, data.Cells) + "\n")
	if data.Drilldown != "" {
		b.WriteString("\n" + th.Accent.Render(data.DrilldownDay) + "\n")
		b.WriteString(data.Drilldown)
	} else {
		b.WriteString(th.Muted.Render("enter: inspect a day · left/right: pick a day"))
	}
	return strings.TrimSpace(b.String())
}

func renderHeatmap(th Theme, cells []engine.HeatmapDay) string {
	var rows []string
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		var row strings.Builder
		for _, cell := range cells[start:end] {
			level := cell.Level
			if level < 0 || level > 4 {
				level = 0
			}
			row.WriteString(th.Heat[level].Render("██") + " ")
		}
		rows = append(rows, strings.TrimRight(row.String(), " "))
	}
	return strings.Join(rows, "\n")
}

type AlertData struct {
	TaskText string
	Time     string
	Date     string
}

func RenderAlert(th Theme, data AlertData) string {
	var b strings.Builder
	b.WriteString("⏰ " + data.TaskText + "\n")
	b.WriteString(fmt.Sprintf("due %s at %s\n\n", data.Date, data.Time))
	b.WriteString("enter: mark done · esc: dismiss")
	return b.String()
}

type FormData struct {
	Title     string
	TextView  string
	TimeView  string
	NotesView string
	Type      model.TaskType
	Category  model.Category
	WeeklyDay int
	Field     string
	ErrorText string
}

func RenderForm(th Theme, data FormData) string {
	mark := func(name string) string {
		if name == data.Field {
			return th.Accent.Render("*")
		}
		return " "
	}
	var b strings.Builder
	b.WriteString(th.Header.Render(data.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s text:  %s\n", mark("text"), data.TextView))
	b.WriteString(fmt.Sprintf("%s time:  %s\n", mark("time"), data.TimeView))
	b.WriteString(fmt.Sprintf("%s type:  %s (tab cycles)\n", mark("type"), data.Type))
	if data.Type == model.TaskTypeWeekly {
		b.WriteString(fmt.Sprintf("%s day:   %s\n", mark("day"), weekdayName(data.WeeklyDay)))
	}
	b.WriteString(fmt.Sprintf("%s cat:   %s %s\n", mark("category"), categoryIcons[data.Category], data.Category))
	b.WriteString(fmt.Sprintf("%s notes: %s\n", mark("notes"), data.NotesView))
	if data.ErrorText != "" {
		b.WriteString(th.Error.Render(data.ErrorText) + "\n")
	}
	b.WriteString(th.Muted.Render("enter: save · esc: cancel · up/down: field"))
	return strings.TrimSpace(b.String())
}

func weekdayName(d int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if d < 0 || d > 6 {
		return names[0]
	}
	return names[d]
}
