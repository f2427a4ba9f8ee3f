package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/filter"
	"github.com/taskwell/taskwell/internal/models"
	"github.com/taskwell/taskwell/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List active tasks with optional filters for text, status, priority, tag, project, and importance",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		f := filter.Filter{}

		if text, _ := cmd.Flags().GetString("search"); text != "" {
			f.Text = text
		}
		switch status, _ := cmd.Flags().GetString("status"); status {
		case "":
		case "pending":
			f.Status = filter.StatusPending
		case "completed", "done":
			f.Status = filter.StatusCompleted
		default:
			fail(fmt.Errorf("invalid status: use pending or completed"))
		}
		if prio, _ := cmd.Flags().GetString("priority"); prio != "" {
			p, ok := models.ParsePriority(prio)
			if !ok {
				fail(fmt.Errorf("invalid priority %q", prio))
			}
			f.Priority = p
		}
		if tagName, _ := cmd.Flags().GetString("tag"); tagName != "" {
			tag, err := findTagByName(a, tagName)
			if err != nil {
				fail(err)
			}
			f.TagID = tag.ID
		}
		if projectName, _ := cmd.Flags().GetString("project"); projectName != "" {
			project, err := findProjectByName(a, projectName)
			if err != nil {
				fail(err)
			}
			f.ProjectID = project.ID
		}
		f.ImportantOnly, _ = cmd.Flags().GetBool("important")

		sortKey, _ := cmd.Flags().GetString("sort")
		if sortKey == "" {
			sortKey = a.cfg.DefaultSort
		}
		key := filter.Sort(sortKey)
		switch key {
		case filter.SortNone, filter.SortDueDate, filter.SortPriority, filter.SortTitle:
		default:
			fail(fmt.Errorf("invalid sort: use due, priority, or title"))
		}

		snapshot, err := a.queries.ActiveTasks(a.owner.ID)
		if err != nil {
			fail(err)
		}
		tasks := filter.Apply(snapshot, f, key)

		if len(tasks) == 0 {
			fmt.Println(tui.MutedStyle.Render("No tasks found. Use 'taskwell add \"task title\"' to create one."))
			return
		}
		printTaskTable(tasks)
	}),
}

func init() {
	listCmd.Flags().StringP("search", "q", "", "Match text in title or description")
	listCmd.Flags().StringP("status", "s", "", "Filter by status: pending|completed")
	listCmd.Flags().String("priority", "", "Filter by priority: low|medium|high")
	listCmd.Flags().StringP("tag", "t", "", "Filter by tag name")
	listCmd.Flags().StringP("project", "p", "", "Filter by project name")
	listCmd.Flags().Bool("important", false, "Show only important tasks")
	listCmd.Flags().String("sort", "", "Sort by: due|priority|title")
}
