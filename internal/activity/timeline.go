// Package activity projects the append-only activity log into the
// day-grouped timeline the activity page shows.
package activity

import (
	"sort"
	"time"

	"github.com/taskwell/taskwell/internal/models"
)

// Group is one day's worth of entries, newest entry first.
type Group struct {
	Date    time.Time
	Entries []models.Activity
}

// Timeline groups entries by calendar day, days newest first and entries
// newest first within each day.
func Timeline(entries []models.Activity) []Group {
	sorted := make([]models.Activity, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	var groups []Group
	for _, entry := range sorted {
		t := entry.Timestamp
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		if len(groups) == 0 || !groups[len(groups)-1].Date.Equal(day) {
			groups = append(groups, Group{Date: day})
		}
		last := len(groups) - 1
		groups[last].Entries = append(groups[last].Entries, entry)
	}
	return groups
}

// Label renders a human-readable description for an action/target pair.
// Unknown actions fall back to a generic label instead of failing.
func Label(entry models.Activity) string {
	target := "item"
	switch entry.TargetType {
	case models.TargetTask:
		target = "task"
	case models.TargetProject:
		target = "project"
	}

	switch entry.Action {
	case models.ActionCreated:
		return target + " created"
	case models.ActionUpdated:
		return target + " updated"
	case models.ActionCompleted:
		return target + " completed"
	case models.ActionDeleted:
		return target + " deleted"
	}
	return target + " activity"
}
