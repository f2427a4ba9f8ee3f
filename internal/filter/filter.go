// Package filter evaluates combinable predicates over an in-memory task
// snapshot. It performs no I/O, so list views can be tested without a
// store behind them.
package filter

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell/internal/models"
)

// Status filters on the completed flag.
type Status string

const (
	StatusAny       Status = ""
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Sort keys for Apply. SortNone preserves snapshot order.
type Sort string

const (
	SortNone     Sort = ""
	SortDueDate  Sort = "due"
	SortPriority Sort = "priority"
	SortTitle    Sort = "title"
)

// Filter is a conjunctive predicate set; zero values impose no constraint.
type Filter struct {
	Text          string
	Status        Status
	Priority      models.Priority
	TagID         uuid.UUID
	ProjectID     uuid.UUID
	ImportantOnly bool
}

// Apply returns the tasks matching every supplied predicate, ordered by
// the sort key. The input slice is not modified.
func Apply(tasks []models.Task, f Filter, key Sort) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			out = append(out, task)
		}
	}
	sortTasks(out, key)
	return out
}

// Matches reports whether a single task satisfies every predicate.
func (f Filter) Matches(task models.Task) bool {
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		title := strings.ToLower(task.Title)
		desc := strings.ToLower(task.Description)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}
	switch f.Status {
	case StatusPending:
		if task.Completed {
			return false
		}
	case StatusCompleted:
		if !task.Completed {
			return false
		}
	}
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	if f.TagID != uuid.Nil && !task.HasTag(f.TagID) {
		return false
	}
	if f.ProjectID != uuid.Nil {
		if task.ProjectID == nil || *task.ProjectID != f.ProjectID {
			return false
		}
	}
	if f.ImportantOnly && !task.Important {
		return false
	}
	return true
}

// sortTasks orders tasks in place. Sorting is stable so equal keys keep
// snapshot order. Due-date sort puts undated tasks last; priority sort
// puts high first.
func sortTasks(tasks []models.Task, key Sort) {
	switch key {
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case SortTitle:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(tasks[i].Title) < strings.ToLower(tasks[j].Title)
		})
	}
}
