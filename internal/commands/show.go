package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/parser"
	"github.com/taskwell/taskwell/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task with its subtasks and comments",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		task, err := a.tasks.Get(a.owner.ID, id)
		if err != nil {
			fail(err)
		}

		title := task.Title
		if task.Important {
			title = "★ " + title
		}
		fmt.Println(tui.HeaderStyle.Render(title))
		fmt.Println(tui.MutedStyle.Render("id: " + task.ID.String()))

		if task.Description != "" {
			fmt.Println(task.Description)
		}

		status := "pending"
		if task.Completed {
			status = "completed"
		}
		fmt.Printf("status: %s   priority: %s\n",
			status, tui.PriorityStyle(string(task.Priority)).Render(string(task.Priority)))

		if task.DueDate != nil {
			fmt.Println("due: " + parser.FormatDueDate(task.DueDate, time.Now()))
		}
		if task.Project != nil {
			fmt.Println("project: " + task.Project.Name)
		}
		if len(task.Tags) > 0 {
			var names []string
			for _, tag := range task.Tags {
				names = append(names, tag.Name)
			}
			fmt.Println("tags: " + tui.MutedStyle.Render(strings.Join(names, ", ")))
		}

		if len(task.Subtasks) > 0 {
			fmt.Println(tui.HeaderStyle.Render("\nSubtasks"))
			for _, sub := range task.Subtasks {
				mark := "[ ]"
				if sub.Completed {
					mark = "[x]"
				}
				fmt.Printf("  %s %s %s\n", mark, sub.Title, tui.MutedStyle.Render(shortID(sub.ID)))
			}
		}

		if len(task.Comments) > 0 {
			fmt.Println(tui.HeaderStyle.Render("\nComments"))
			for _, comment := range task.Comments {
				fmt.Printf("  %s %s\n",
					tui.MutedStyle.Render(comment.CreatedAt.Local().Format("2006-01-02 15:04")),
					comment.Content)
				fmt.Println(tui.MutedStyle.Render("    id: " + shortID(comment.ID)))
			}
		}
	}),
}
