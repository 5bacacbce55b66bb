package engine

import (
	"reflect"
	"testing"

	"daytick/internal/dates"
	"daytick/internal/model"
)

func timed(t model.Task, clock string) model.Task {
	t.Time = clock
	return t
}

func TestComposeDayFiltersAndSorts(t *testing.T) {
	today := "2024-01-10"
	tasks := []model.Task{
		timed(recurring(3, "2024-01-01"), "14:00"),
		oneTime(1, "2024-01-10"),
		timed(oneTime(2, "2024-01-10"), "09:00"),
		oneTime(4, "2024-01-11"), // tomorrow, not visible
	}
	res := Compose(tasks, ModeDay, today, today)
	got := make([]int64, 0, len(res.Tasks))
	for _, task := range res.Tasks {
		got = append(got, task.ID)
	}
	// Timed tasks first by clock, untimed last on the same effective day.
	want := []int64{2, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestComposeWeekForcesAnchorToToday(t *testing.T) {
	today := "2024-01-10"
	tasks := []model.Task{recurring(1, "2024-01-01")}
	res := Compose(tasks, ModeWeek, "2023-06-01", today)
	if res.Anchor != today {
		t.Fatalf("week anchor = %s, want %s", res.Anchor, today)
	}
}

func TestComposeWeekEqualsUnionOfDayViews(t *testing.T) {
	today := "2024-01-08" // a Monday
	tasks := []model.Task{
		recurring(1, "2024-01-01"),
		weekly(2, "2024-01-01", 3), // Wednesday within the window
		weekly(3, "2024-01-01", 1), // Monday, due twice in the window
		oneTime(4, "2024-01-11"),   // inside the window
		oneTime(5, "2024-02-01"),   // outside the window
		recurring(6, "2024-01-20"), // starts after the window
	}
	res := Compose(tasks, ModeWeek, today, today)

	union := make(map[int64]bool)
	for i := 0; i < 7; i++ {
		day, err := dates.AddDays(today, i)
		if err != nil {
			t.Fatalf("add days: %v", err)
		}
		for _, task := range Compose(tasks, ModeDay, day, today).Tasks {
			union[task.ID] = true
		}
	}

	gotIDs := make(map[int64]bool)
	for _, task := range res.Tasks {
		if gotIDs[task.ID] {
			t.Fatalf("duplicate id %d in week view", task.ID)
		}
		gotIDs[task.ID] = true
	}
	if !reflect.DeepEqual(gotIDs, union) {
		t.Fatalf("week view %v != union of day views %v", gotIDs, union)
	}
}

func TestSortIsStrictTotalOrderAndStable(t *testing.T) {
	anchor := "2024-01-08"
	tasks := []model.Task{
		weekly(5, "2024-01-01", 2),
		timed(recurring(3, "2023-06-01"), "08:00"),
		recurring(1, "2023-06-01"),
		timed(recurring(2, "2023-06-01"), "08:00"),
		oneTime(4, "2024-01-08"),
	}
	first := Compose(tasks, ModeDay, anchor, anchor)
	second := Compose(tasks, ModeDay, anchor, anchor)
	if !reflect.DeepEqual(first.Tasks, second.Tasks) {
		t.Fatal("sort order changed across repeated composition")
	}
	for i := 0; i < len(first.Tasks); i++ {
		for j := i + 1; j < len(first.Tasks); j++ {
			a, b := first.Tasks[i], first.Tasks[j]
			if a.ID == b.ID {
				t.Fatalf("duplicate id %d", a.ID)
			}
		}
	}
	// Identical effective date and time fall back to id order.
	var ids []int64
	for _, task := range first.Tasks {
		if task.Time == "08:00" {
			ids = append(ids, task.ID)
		}
	}
	if !reflect.DeepEqual(ids, []int64{2, 3}) {
		t.Fatalf("tie-break by id failed: %v", ids)
	}
}

func TestEffectiveSortDate(t *testing.T) {
	anchor := "2024-01-08" // Monday
	if got := EffectiveSortDate(recurring(1, "2023-01-01"), anchor); got != anchor {
		t.Fatalf("old recurring task should sort as the anchor day, got %s", got)
	}
	if got := EffectiveSortDate(recurring(1, "2024-02-01"), anchor); got != "2024-02-01" {
		t.Fatalf("future recurring task should sort as its start day, got %s", got)
	}
	if got := EffectiveSortDate(weekly(1, "2023-01-01", 3), anchor); got != "2024-01-10" {
		t.Fatalf("weekly Wednesday task should sort as the next Wednesday, got %s", got)
	}
	if got := EffectiveSortDate(weekly(1, "2023-01-01", 1), anchor); got != anchor {
		t.Fatalf("weekly task on the anchor weekday should sort as the anchor, got %s", got)
	}
	if got := EffectiveSortDate(oneTime(1, "2024-01-03"), anchor); got != "2024-01-03" {
		t.Fatalf("one-time task should sort as its own day, got %s", got)
	}
}

func TestCompletionPercent(t *testing.T) {
	today := "2024-01-10"
	done := recurring(1, "2024-01-01")
	done.Completions = done.Completions.Add(today)
	tasks := []model.Task{
		done,
		recurring(2, "2024-01-01"),
		recurring(3, "2024-01-01"),
	}
	res := Compose(tasks, ModeDay, today, today)
	if res.Percent != 33 {
		t.Fatalf("percent = %d, want 33", res.Percent)
	}
}

func TestCompletionPercentEmptyViewIsZero(t *testing.T) {
	res := Compose(nil, ModeDay, "2024-01-10", "2024-01-10")
	if res.Percent != 0 {
		t.Fatalf("percent = %d, want 0", res.Percent)
	}
}

func TestHistoryModeBehavesLikeDayModeAtDrilldown(t *testing.T) {
	today := "2024-01-20"
	drill := "2024-01-10"
	tasks := []model.Task{
		recurring(1, "2024-01-01"),
		oneTime(2, "2024-01-10"),
		oneTime(3, "2024-01-05"), // rolls to today only, not to the drilldown day
	}
	hist := Compose(tasks, ModeHistory, drill, today)
	day := Compose(tasks, ModeDay, drill, today)
	if !reflect.DeepEqual(hist, day) {
		t.Fatal("history drilldown should equal day view at that anchor")
	}
	for _, task := range hist.Tasks {
		if task.ID == 3 {
			t.Fatal("rollover task leaked into a non-today drilldown")
		}
	}
}
