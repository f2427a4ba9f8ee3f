package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/db"
	"github.com/taskwell/taskwell/internal/models"
	"github.com/taskwell/taskwell/internal/parser"
	"github.com/taskwell/taskwell/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task's fields",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}

		req := db.UpdateTaskRequest{}
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			req.Title = &title
		}
		if cmd.Flags().Changed("desc") {
			desc, _ := cmd.Flags().GetString("desc")
			req.Description = &desc
		}
		if cmd.Flags().Changed("priority") {
			prio, _ := cmd.Flags().GetString("priority")
			p, ok := models.ParsePriority(prio)
			if !ok {
				fail(fmt.Errorf("invalid priority %q", prio))
			}
			req.Priority = &p
		}
		if cmd.Flags().Changed("important") {
			important, _ := cmd.Flags().GetBool("important")
			req.Important = &important
		}
		if cmd.Flags().Changed("due") {
			due, _ := cmd.Flags().GetString("due")
			if due == "none" {
				req.ClearDue = true
			} else {
				dueDate, err := parser.ParseDueDate(due, time.Now())
				if err != nil {
					fail(err)
				}
				req.DueDate = dueDate
			}
		}

		task, err := a.tasks.Update(a.owner.ID, id, req)
		if err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Updated ") + task.Title)
	}),
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("desc", "d", "", "New description")
	editCmd.Flags().String("priority", "", "Priority: low|medium|high")
	editCmd.Flags().Bool("important", false, "Important flag")
	editCmd.Flags().String("due", "", "Due date, or 'none' to clear")
}
