package stats

import (
	"time"

	"github.com/taskwell/taskwell/internal/models"
)

// CellMonth flags which month a calendar cell belongs to relative to the
// target month.
type CellMonth int

const (
	PreviousMonth CellMonth = iota - 1
	CurrentMonth
	NextMonth
)

// CalendarCell is one day in the 6x7 grid.
type CalendarCell struct {
	Date  time.Time
	Month CellMonth
	Tasks []models.Task
}

// CalendarGrid lays out a month as 42 cells, Monday-first, padded with the
// trailing days of the previous month and the leading days of the next so
// every week is complete. Tasks land in the cell matching their due date's
// calendar day; undated tasks are not shown.
func CalendarGrid(tasks []models.Task, year int, month time.Month, loc *time.Location) []CalendarCell {
	if loc == nil {
		loc = time.UTC
	}

	byDay := map[time.Time][]models.Task{}
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		day := dateOf(task.DueDate.In(loc))
		byDay[day] = append(byDay[day], task)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -mondayIndex(first.Weekday()))

	cells := make([]CalendarCell, 42)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		flag := CurrentMonth
		switch {
		case day.Before(first):
			flag = PreviousMonth
		case day.Month() != month || day.Year() != year:
			flag = NextMonth
		}
		cells[i] = CalendarCell{Date: day, Month: flag, Tasks: byDay[day]}
	}
	return cells
}
