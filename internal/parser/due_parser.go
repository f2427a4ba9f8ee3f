package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDueDate parses the due date forms commands accept:
// - yyyy-mm-dd (e.g. "2026-09-15")
// - dd/mm/yyyy (e.g. "15/09/2026")
// - X days / X weeks / X hours relative to now
// - "today", "tomorrow"
func ParseDueDate(input string, now time.Time) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	switch strings.ToLower(input) {
	case "today":
		due := endOfDay(now)
		return &due, nil
	case "tomorrow":
		due := endOfDay(now.AddDate(0, 0, 1))
		return &due, nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		due := endOfDay(t)
		return &due, nil
	}

	if due, err := parseDayMonthYear(input, now.Location()); err == nil {
		return due, nil
	}

	if due, err := parseRelative(input, now); err == nil {
		return due, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, X weeks, or X hours")
}

var dayMonthYearRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

func parseDayMonthYear(input string, loc *time.Location) (*time.Time, error) {
	matches := dayMonthYearRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	due := time.Date(year, time.Month(month), day, 23, 59, 59, 0, loc)

	// Rejects overflow dates like 31/02 (handles leap years too).
	if due.Day() != day || due.Month() != time.Month(month) || due.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &due, nil
}

var relativeRegex = regexp.MustCompile(`^(\d+)\s*(hour|hours|day|days|week|weeks)$`)

func parseRelative(input string, now time.Time) (*time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return nil, fmt.Errorf("invalid amount")
	}

	switch matches[2] {
	case "hour", "hours":
		due := now.Add(time.Duration(amount) * time.Hour)
		return &due, nil
	case "day", "days":
		due := endOfDay(now.AddDate(0, 0, amount))
		return &due, nil
	case "week", "weeks":
		due := endOfDay(now.AddDate(0, 0, amount*7))
		return &due, nil
	}
	return nil, fmt.Errorf("unsupported time unit")
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// FormatDueDate renders a due date relative to now for list output.
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := due.Format("2006-01-02")
	switch {
	case daysDiff < 0:
		return fmt.Sprintf("overdue (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("in %d days (%s)", daysDiff, dateStr)
	}
	return dateStr
}
