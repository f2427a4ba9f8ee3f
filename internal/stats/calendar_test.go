package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/models"
)

// April 2026 has 30 days and starts on a Wednesday.
func TestCalendarGridPadsAThirtyDayMonth(t *testing.T) {
	cells := CalendarGrid(nil, 2026, time.April, time.UTC)
	require.Len(t, cells, 42)

	// Two leading cells from March fill out Monday and Tuesday.
	require.Equal(t, PreviousMonth, cells[0].Month)
	require.Equal(t, PreviousMonth, cells[1].Month)
	require.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), cells[0].Date)

	require.Equal(t, CurrentMonth, cells[2].Month)
	require.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), cells[2].Date)
	require.Equal(t, CurrentMonth, cells[31].Month)
	require.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), cells[31].Date)

	for _, cell := range cells[32:] {
		require.Equal(t, NextMonth, cell.Month)
	}
}

func TestCalendarGridStartsOnMonday(t *testing.T) {
	cells := CalendarGrid(nil, 2026, time.August, time.UTC)
	require.Len(t, cells, 42)
	require.Equal(t, time.Monday, cells[0].Date.Weekday())
	for i := 1; i < len(cells); i++ {
		require.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
	}
}

func TestCalendarGridPlacesTasksByDueDay(t *testing.T) {
	due := time.Date(2026, 4, 15, 18, 30, 0, 0, time.UTC)
	outside := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{Title: "dentist", DueDate: &due},
		{Title: "far away", DueDate: &outside},
		{Title: "undated"},
	}

	cells := CalendarGrid(tasks, 2026, time.April, time.UTC)
	var placed int
	for _, cell := range cells {
		placed += len(cell.Tasks)
		if cell.Date.Equal(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)) {
			require.Len(t, cell.Tasks, 1)
			require.Equal(t, "dentist", cell.Tasks[0].Title)
		}
	}
	require.Equal(t, 1, placed)
}

func TestCalendarGridMonthAlreadyAlignedStillPadsFortyTwo(t *testing.T) {
	// June 2026 starts on a Monday; the grid still spans six weeks.
	cells := CalendarGrid(nil, 2026, time.June, time.UTC)
	require.Len(t, cells, 42)
	require.Equal(t, CurrentMonth, cells[0].Month)
	require.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), cells[0].Date)
	require.Equal(t, NextMonth, cells[41].Month)
}
