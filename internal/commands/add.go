package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/db"
	"github.com/taskwell/taskwell/internal/models"
	"github.com/taskwell/taskwell/internal/parser"
	"github.com/taskwell/taskwell/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task description]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Smart parsing syntax:
  #tag1,tag2  - Tags (comma-separated or individual)
  @project    - Project name
  +priority   - Priority (low/medium/high or 1/2/3)
  !important  - Mark as important
  due:2days   - Due date (yyyy-mm-dd, dd/mm/yyyy, X days, X weeks)

Example:
  taskwell add "Fix login bug #backend @website +high due:2days"`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		parsed := parser.ParseTitle(strings.Join(args, " "), time.Now())
		if len(parsed.Errors) > 0 {
			fail(fmt.Errorf("%s", strings.Join(parsed.Errors, "; ")))
		}

		req := db.CreateTaskRequest{
			Title:     parsed.Title,
			Important: parsed.Important,
			DueDate:   parsed.DueDate,
			Tags:      parsed.Tags,
		}

		if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
			req.Description = desc
		}
		if prio, _ := cmd.Flags().GetString("priority"); prio != "" {
			parsed.Priority = prio
		}
		if parsed.Priority != "" {
			p, ok := models.ParsePriority(parsed.Priority)
			if !ok {
				fail(fmt.Errorf("invalid priority %q", parsed.Priority))
			}
			req.Priority = p
		}
		if important, _ := cmd.Flags().GetBool("important"); important {
			req.Important = true
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			dueDate, err := parser.ParseDueDate(due, time.Now())
			if err != nil {
				fail(err)
			}
			req.DueDate = dueDate
		}
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			req.Tags = append(req.Tags, tags...)
		}

		// @project from the title or --project resolves by name,
		// creating the project on first use.
		projectName, _ := cmd.Flags().GetString("project")
		if projectName == "" {
			projectName = parsed.Project
		}
		if projectName != "" {
			project, err := findOrCreateProject(a, projectName)
			if err != nil {
				fail(err)
			}
			req.ProjectID = &project.ID
		}

		task, err := a.tasks.Create(a.owner.ID, req)
		if err != nil {
			fail(err)
		}

		fmt.Println(tui.SuccessStyle.Render("✓ Added task ") + tui.TitleStyle.Render(task.Title))
		fmt.Println(tui.MutedStyle.Render("  id: " + shortID(task.ID)))
	}),
}

func init() {
	addCmd.Flags().StringP("desc", "d", "", "Task description")
	addCmd.Flags().StringP("project", "p", "", "Project name")
	addCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	addCmd.Flags().String("priority", "", "Priority: low|medium|high")
	addCmd.Flags().Bool("important", false, "Mark the task as important")
	addCmd.Flags().String("due", "", "Due date (yyyy-mm-dd, dd/mm/yyyy, X days)")
}
