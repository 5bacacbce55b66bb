package engine

import (
	"testing"

	"daytick/internal/dates"
	"daytick/internal/model"
)

func intPtr(v int) *int { return &v }

func oneTime(id int64, created string) model.Task {
	return model.Task{ID: id, Text: "one", Type: model.TaskTypeOneTime, Category: model.CategoryPersonal, DateCreated: created}
}

func recurring(id int64, created string) model.Task {
	return model.Task{ID: id, Text: "daily", Type: model.TaskTypeRecurring, Category: model.CategoryPersonal, DateCreated: created}
}

func weekly(id int64, created string, day int) model.Task {
	return model.Task{ID: id, Text: "weekly", Type: model.TaskTypeWeekly, Category: model.CategoryPersonal, DateCreated: created, WeeklyDay: intPtr(day)}
}

func TestOneTimeDueOnItsOwnDay(t *testing.T) {
	task := oneTime(1, "2024-01-10")
	if !IsDue(task, "2024-01-10", "2024-01-10") {
		t.Fatal("one-time task should be due on its creation day")
	}
	if IsDue(task, "2024-01-09", "2024-01-10") {
		t.Fatal("one-time task should not be due before its creation day")
	}
}

func TestOneTimeRolloverOnlyOnToday(t *testing.T) {
	task := oneTime(1, "2024-01-10")
	// Incomplete past task surfaces on the current day.
	if !IsDue(task, "2024-01-12", "2024-01-12") {
		t.Fatal("uncompleted past one-time task should roll forward to today")
	}
	// But not on an arbitrary day between creation and today.
	if IsDue(task, "2024-01-11", "2024-01-12") {
		t.Fatal("rollover must be restricted to the today view")
	}
	// Completing the original occurrence stops the rollover.
	task.Completions = task.Completions.Add("2024-01-10")
	if IsDue(task, "2024-01-12", "2024-01-12") {
		t.Fatal("completed one-time task should not roll forward")
	}
	// It still shows on its own day, completed.
	if !IsDue(task, "2024-01-10", "2024-01-12") {
		t.Fatal("completed one-time task should remain due on its own day")
	}
}

func TestRecurringDueFromCreationOnward(t *testing.T) {
	task := recurring(1, "2024-01-10")
	if IsDue(task, "2024-01-09", "2024-01-09") {
		t.Fatal("recurring task should not be due before its start day")
	}
	for _, day := range []string{"2024-01-10", "2024-02-29", "2025-07-01"} {
		if !IsDue(task, day, day) {
			t.Fatalf("recurring task should be due on %s", day)
		}
	}
}

func TestHiddenDateIsStrictlyPerDate(t *testing.T) {
	task := recurring(1, "2024-01-01")
	task.HiddenDates = task.HiddenDates.Add("2024-01-15")
	if IsDue(task, "2024-01-15", "2024-01-15") {
		t.Fatal("hidden day must not be due")
	}
	if !IsDue(task, "2024-01-14", "2024-01-15") || !IsDue(task, "2024-01-16", "2024-01-16") {
		t.Fatal("hiding one day must not affect neighboring days")
	}
}

func TestWeeklyScenarioFromMonday(t *testing.T) {
	task := weekly(1, "2024-01-01", 1) // Mondays
	for _, day := range []string{"2024-01-01", "2024-01-08", "2024-01-15"} {
		if !IsDue(task, day, day) {
			t.Fatalf("weekly Monday task should be due on %s", day)
		}
	}
	if IsDue(task, "2024-01-09", "2024-01-09") {
		t.Fatal("weekly Monday task should not be due on a Tuesday")
	}
}

func TestWeeklyTwoYearSweep(t *testing.T) {
	created := "2024-01-01"
	start, err := dates.Parse(created)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	for wd := 0; wd <= 6; wd++ {
		task := weekly(int64(wd+1), created, wd)
		for i := -30; i < 740; i++ { // includes the 2024 leap year and days before creation
			day := dates.Format(start.AddDate(0, 0, i))
			want := day >= created && int(start.AddDate(0, 0, i).Weekday()) == wd
			if got := IsDue(task, day, day); got != want {
				t.Fatalf("weekday %d on %s: IsDue = %v, want %v", wd, day, got, want)
			}
		}
	}
}

func TestRecurringMonotonicOverHorizon(t *testing.T) {
	task := recurring(1, "2024-02-15")
	base, err := dates.Parse(task.DateCreated)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for i := 0; i < 400; i++ {
		day := dates.Format(base.AddDate(0, 0, i))
		if !IsDue(task, day, day) {
			t.Fatalf("recurring task not due on %s", day)
		}
	}
}

func TestMalformedDateNeverDue(t *testing.T) {
	task := recurring(1, "2024-01-01")
	if IsDue(task, "2024-1-1", "2024-01-05") {
		t.Fatal("malformed date should never be due")
	}
}
