package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/models"
)

var noon = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return noon.AddDate(0, 0, -n)
}

func TestCompletionRate(t *testing.T) {
	require.Equal(t, 0, CompletionRate(0, 0))
	require.Equal(t, 33, CompletionRate(1, 3))
	require.Equal(t, 67, CompletionRate(2, 3))
	require.Equal(t, 100, CompletionRate(4, 4))
}

func TestStreakWalksBackFromToday(t *testing.T) {
	completions := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}
	require.Equal(t, 3, Streak(completions, noon))
}

func TestStreakSurvivesAnEmptyToday(t *testing.T) {
	// Nothing done yet today; yesterday and the day before still count.
	completions := []time.Time{daysAgo(1), daysAgo(2)}
	require.Equal(t, 2, Streak(completions, noon))
}

func TestStreakEndsAtAGap(t *testing.T) {
	completions := []time.Time{daysAgo(0), daysAgo(2), daysAgo(3)}
	require.Equal(t, 1, Streak(completions, noon))
}

func TestStreakZeroAfterTwoIdleDays(t *testing.T) {
	completions := []time.Time{daysAgo(2), daysAgo(3)}
	require.Equal(t, 0, Streak(completions, noon))
	require.Equal(t, 0, Streak(nil, noon))
}

func TestStreakCountsADayOnce(t *testing.T) {
	completions := []time.Time{daysAgo(0), daysAgo(0).Add(time.Hour), daysAgo(1)}
	require.Equal(t, 2, Streak(completions, noon))
}

func TestProductivityFillsSevenDays(t *testing.T) {
	completions := []time.Time{daysAgo(0), daysAgo(0).Add(2 * time.Hour), daysAgo(3), daysAgo(9)}

	got := Productivity(completions, noon)
	require.Len(t, got, 7)
	require.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), got[0].Date)
	counts := make([]int, 7)
	for i, dc := range got {
		counts[i] = dc.Count
	}
	// Oldest first: the day 3 days back sits at index 3, today at index 6.
	require.Equal(t, []int{0, 0, 0, 1, 0, 0, 2}, counts)
}

func TestWeekdayHistogramIsMondayFirst(t *testing.T) {
	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	got := WeekdayHistogram([]time.Time{monday, monday, sunday})
	require.Equal(t, [7]int{2, 0, 0, 0, 0, 0, 1}, got)
}

func TestProjectHistogramBucketsUnassigned(t *testing.T) {
	home := &models.Project{ID: uuid.New(), Name: "home"}
	tasks := []models.Task{
		{Title: "a", Project: home},
		{Title: "b", Project: home},
		{Title: "c"},
	}

	got := ProjectHistogram(tasks)
	require.Equal(t, []Bucket{{Label: "home", Count: 2}, {Label: UnassignedLabel, Count: 1}}, got)
}

func TestPriorityHistogramOrder(t *testing.T) {
	tasks := []models.Task{
		{Priority: models.PriorityLow},
		{Priority: models.PriorityHigh},
		{Priority: models.PriorityLow},
	}

	got := PriorityHistogram(tasks)
	require.Equal(t, []Bucket{
		{Label: "high", Count: 1},
		{Label: "medium", Count: 0},
		{Label: "low", Count: 2},
	}, got)
}

func TestUpcomingSkipsPastCompletedAndUndated(t *testing.T) {
	past := daysAgo(2)
	today := noon.Add(4 * time.Hour)
	nextWeek := noon.AddDate(0, 0, 7)
	tasks := []models.Task{
		{Title: "overdue", DueDate: &past},
		{Title: "today", DueDate: &today},
		{Title: "done", DueDate: &nextWeek, Completed: true},
		{Title: "next week", DueDate: &nextWeek},
		{Title: "undated"},
	}

	got := Upcoming(tasks, noon, 5)
	require.Len(t, got, 2)
	require.Equal(t, "today", got[0].Title)
	require.Equal(t, "next week", got[1].Title)
}

func TestUpcomingHonorsLimit(t *testing.T) {
	var tasks []models.Task
	for i := 1; i <= 4; i++ {
		due := noon.AddDate(0, 0, i)
		tasks = append(tasks, models.Task{Title: "t", DueDate: &due})
	}
	require.Len(t, Upcoming(tasks, noon, 2), 2)
}

func TestComputeCounts(t *testing.T) {
	tasks := []models.Task{
		{Title: "done", Completed: true},
		{Title: "open"},
		{Title: "open too"},
	}

	s := Compute(tasks, []time.Time{daysAgo(0)}, noon)
	require.Equal(t, 3, s.TotalCount)
	require.Equal(t, 1, s.CompletedCount)
	require.Equal(t, 2, s.PendingCount)
	require.Equal(t, 33, s.CompletionRate)
	require.Equal(t, 1, s.Streak)
}
