package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/db"
	"github.com/taskwell/taskwell/internal/tui"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		setCompleted(a, args[0], true)
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [task-id]",
	Short: "Mark a completed task as pending again",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		setCompleted(a, args[0], false)
	}),
}

func setCompleted(a *app, arg string, completed bool) {
	id, err := a.resolveTask(arg, false)
	if err != nil {
		fail(err)
	}
	task, err := a.tasks.Update(a.owner.ID, id, db.UpdateTaskRequest{Completed: &completed})
	if err != nil {
		fail(err)
	}
	if completed {
		fmt.Println(tui.SuccessStyle.Render("✓ Completed: ") + task.Title)
	} else {
		fmt.Println(tui.WarningStyle.Render("↩ Back to pending: ") + task.Title)
	}
}
