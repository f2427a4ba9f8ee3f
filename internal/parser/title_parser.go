package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedTask represents a task parsed from natural add-command syntax.
type ParsedTask struct {
	Title     string
	Project   string
	Tags      []string
	Priority  string
	Important bool
	DueDate   *time.Time
	Errors    []string
}

var (
	tagRegex      = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	projectRegex  = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	priorityRegex = regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`due:([^\s]+)`)
)

// ParseTitle extracts metadata from a task title using natural syntax:
//
//	"Task title #tag1,tag2 @project +high !important due:2days"
func ParseTitle(input string, now time.Time) ParsedTask {
	result := ParsedTask{
		Title:  input,
		Tags:   []string{},
		Errors: []string{},
	}

	// Tags: #tag1,tag2 or #tag1 #tag2
	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		for _, tag := range strings.Split(match[1], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				result.Tags = append(result.Tags, tag)
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "")

	// Project: @project-name
	if matches := projectRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Project = matches[1]
		input = projectRegex.ReplaceAllString(input, "")
	}

	// Priority: +high, +3, +medium, ...
	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		priority := strings.ToLower(matches[1])
		if isValidPriority(priority) {
			result.Priority = NormalizePriority(priority)
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+matches[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Important flag: !important or !i
	if strings.Contains(input, "!important") || strings.Contains(input, "!i") {
		result.Important = true
		input = strings.ReplaceAll(input, "!important", "")
		input = strings.ReplaceAll(input, "!i", "")
	}

	// Due date: due:2026-09-15, due:2days, ...
	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		dueDate, err := ParseDueDate(matches[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+matches[1]+"': "+err.Error())
		} else {
			result.DueDate = dueDate
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.TrimSpace(strings.Join(strings.Fields(input), " "))

	return result
}

// isValidPriority checks if a priority value is valid.
func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "med", "high", "1", "2", "3":
		return true
	}
	return false
}

// NormalizePriority converts priority input to its canonical form.
func NormalizePriority(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "1", "low":
		return "low"
	case "2", "medium", "med":
		return "medium"
	case "3", "high":
		return "high"
	}
	return ""
}
