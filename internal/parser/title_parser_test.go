package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTitleFullSyntax(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	got := ParseTitle("Ship the release #work,urgent @launch +high !important due:2days", at)

	require.Equal(t, "Ship the release", got.Title)
	require.Equal(t, []string{"work", "urgent"}, got.Tags)
	require.Equal(t, "launch", got.Project)
	require.Equal(t, "high", got.Priority)
	require.True(t, got.Important)
	require.NotNil(t, got.DueDate)
	require.Equal(t, time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), *got.DueDate)
	require.Empty(t, got.Errors)
}

func TestParseTitlePlain(t *testing.T) {
	got := ParseTitle("Water the plants", time.Now())
	require.Equal(t, "Water the plants", got.Title)
	require.Empty(t, got.Tags)
	require.Empty(t, got.Project)
	require.Empty(t, got.Priority)
	require.False(t, got.Important)
	require.Nil(t, got.DueDate)
}

func TestParseTitleSeparateTags(t *testing.T) {
	got := ParseTitle("Plan trip #travel #family", time.Now())
	require.Equal(t, "Plan trip", got.Title)
	require.Equal(t, []string{"travel", "family"}, got.Tags)
}

func TestParseTitleNumericPriority(t *testing.T) {
	got := ParseTitle("Pay rent +3", time.Now())
	require.Equal(t, "high", got.Priority)

	got = ParseTitle("Stretch +1", time.Now())
	require.Equal(t, "low", got.Priority)
}

func TestParseTitleInvalidPriorityReported(t *testing.T) {
	got := ParseTitle("Do a thing +urgent", time.Now())
	require.Empty(t, got.Priority)
	require.Len(t, got.Errors, 1)
}

func TestParseTitleBadDueDateReported(t *testing.T) {
	got := ParseTitle("Do a thing due:someday", time.Now())
	require.Nil(t, got.DueDate)
	require.Len(t, got.Errors, 1)
	require.Equal(t, "Do a thing", got.Title)
}

func TestNormalizePriority(t *testing.T) {
	require.Equal(t, "low", NormalizePriority("1"))
	require.Equal(t, "medium", NormalizePriority("med"))
	require.Equal(t, "high", NormalizePriority("HIGH"))
	require.Equal(t, "", NormalizePriority("urgent"))
}
