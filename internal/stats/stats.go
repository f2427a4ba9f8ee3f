// Package stats computes derived read-models over a caller-supplied
// snapshot: completion statistics, the calendar grid, and the upcoming
// list. All functions are pure; empty input yields zero values, never an
// error.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/taskwell/taskwell/internal/models"
)

// DayCount is one productivity bucket: completions on a calendar day.
type DayCount struct {
	Date  time.Time
	Count int
}

// Bucket is one labeled histogram slot.
type Bucket struct {
	Label string
	Count int
}

// UnassignedLabel buckets tasks without a project in the project chart.
const UnassignedLabel = "unassigned"

// Statistics is the aggregate view behind the statistics page.
type Statistics struct {
	TotalCount     int
	CompletedCount int
	PendingCount   int
	CompletionRate int
	Streak         int
	Productivity   []DayCount // last 7 days, oldest first
	Weekday        [7]int     // Mon..Sun, all history
	ByProject      []Bucket
	ByPriority     []Bucket
}

// Compute builds the statistics for one owner. tasks is the active task
// snapshot; completions are the timestamps of every completion event on
// record; now anchors the day-based series.
func Compute(tasks []models.Task, completions []time.Time, now time.Time) Statistics {
	s := Statistics{
		TotalCount: len(tasks),
	}
	for _, task := range tasks {
		if task.Completed {
			s.CompletedCount++
		}
	}
	s.PendingCount = s.TotalCount - s.CompletedCount
	s.CompletionRate = CompletionRate(s.CompletedCount, s.TotalCount)
	s.Streak = Streak(completions, now)
	s.Productivity = Productivity(completions, now)
	s.Weekday = WeekdayHistogram(completions)
	s.ByProject = ProjectHistogram(tasks)
	s.ByPriority = PriorityHistogram(tasks)
	return s
}

// CompletionRate is the rounded percentage of completed tasks, 0 when
// there are none at all.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// Streak counts consecutive days with at least one completion, walking
// back from today, or from yesterday when today has none yet. A gap ends
// the streak.
func Streak(completions []time.Time, now time.Time) int {
	days := make(map[time.Time]bool, len(completions))
	for _, t := range completions {
		days[dateOf(t.In(now.Location()))] = true
	}

	day := dateOf(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
		if !days[day] {
			return 0
		}
	}

	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Productivity counts completions per calendar day over the last 7 days,
// oldest first. Days without completions appear with a zero count.
func Productivity(completions []time.Time, now time.Time) []DayCount {
	counts := make(map[time.Time]int, len(completions))
	for _, t := range completions {
		counts[dateOf(t.In(now.Location()))]++
	}

	out := make([]DayCount, 7)
	start := dateOf(now).AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		out[i] = DayCount{Date: d, Count: counts[d]}
	}
	return out
}

// WeekdayHistogram buckets all completions into Mon..Sun.
func WeekdayHistogram(completions []time.Time) [7]int {
	var out [7]int
	for _, t := range completions {
		out[mondayIndex(t.Weekday())]++
	}
	return out
}

// ProjectHistogram counts tasks per project name, with a bucket for the
// unassigned ones, largest first.
func ProjectHistogram(tasks []models.Task) []Bucket {
	counts := map[string]int{}
	for _, task := range tasks {
		label := UnassignedLabel
		if task.Project != nil {
			label = task.Project.Name
		}
		counts[label]++
	}
	return sortedBuckets(counts)
}

// PriorityHistogram counts tasks per priority, high to low.
func PriorityHistogram(tasks []models.Task) []Bucket {
	counts := map[models.Priority]int{}
	for _, task := range tasks {
		counts[task.Priority]++
	}
	order := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	out := make([]Bucket, 0, len(order))
	for _, p := range order {
		out = append(out, Bucket{Label: string(p), Count: counts[p]})
	}
	return out
}

// Upcoming returns tasks due today or later, soonest first, truncated to
// limit. Undated tasks are excluded.
func Upcoming(tasks []models.Task, now time.Time, limit int) []models.Task {
	today := dateOf(now)
	var due []models.Task
	for _, task := range tasks {
		if task.DueDate == nil || task.Completed {
			continue
		}
		if dateOf(task.DueDate.In(now.Location())).Before(today) {
			continue
		}
		due = append(due, task)
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(*due[j].DueDate)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// dateOf truncates a time to its calendar day, keeping the location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayIndex maps time.Weekday (Sunday = 0) onto a Monday-first 0..6.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func sortedBuckets(counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for label, count := range counts {
		out = append(out, Bucket{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
