package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
	"github.com/taskwell/taskwell/internal/parser"
	"github.com/taskwell/taskwell/internal/tui"
)

// shortID is the id prefix shown in lists; long enough to resolve back
// uniquely in any realistic personal task set.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// findProjectByName resolves one of the owner's projects case-insensitively.
func findProjectByName(a *app, name string) (*models.Project, error) {
	projects, err := a.projects.List(a.owner.ID)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if strings.EqualFold(projects[i].Name, name) {
			return &projects[i], nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "project"}
}

// findOrCreateProject resolves a project by name, creating it on first
// use so "@project" in add syntax just works.
func findOrCreateProject(a *app, name string) (*models.Project, error) {
	project, err := findProjectByName(a, name)
	if err == nil {
		return project, nil
	}
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}
	return a.projects.Create(a.owner.ID, name, "", "")
}

// findTagByName resolves one of the owner's tags case-insensitively.
func findTagByName(a *app, name string) (*models.Tag, error) {
	tags, err := a.tags.List(a.owner.ID)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		if strings.EqualFold(tags[i].Name, name) {
			return &tags[i], nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "tag"}
}

// printTaskTable renders tasks the way the list and search views show
// them.
func printTaskTable(tasks []models.Task) {
	now := time.Now()
	header := fmt.Sprintf("%-9s %-3s %-40s %-14s %-8s %-20s %s",
		"ID", "", "TITLE", "PROJECT", "PRIORITY", "DUE", "TAGS")
	fmt.Println(tui.HeaderStyle.Render(header))
	fmt.Println(tui.MutedStyle.Render(strings.Repeat("-", 100)))

	for _, task := range tasks {
		mark := " "
		titleStyle := tui.TitleStyle
		if task.Completed {
			mark = "✓"
			titleStyle = tui.DoneStyle
		}

		title := task.Title
		if len(title) > 38 {
			title = title[:35] + "..."
		}
		if task.Important {
			title = "★ " + title
		}

		project := ""
		if task.Project != nil {
			project = task.Project.Name
		}
		if len(project) > 12 {
			project = project[:9] + "..."
		}

		var tagNames []string
		for _, tag := range task.Tags {
			tagNames = append(tagNames, tag.Name)
		}

		fmt.Printf("%-9s %-3s %s %-14s %s %-20s %s\n",
			tui.MutedStyle.Render(shortID(task.ID)),
			mark,
			titleStyle.Render(fmt.Sprintf("%-40s", title)),
			project,
			tui.PriorityStyle(string(task.Priority)).Render(fmt.Sprintf("%-8s", task.Priority)),
			parser.FormatDueDate(task.DueDate, now),
			tui.MutedStyle.Render(strings.Join(tagNames, ",")))
	}
}
