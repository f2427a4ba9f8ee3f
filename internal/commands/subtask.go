package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/tui"
)

var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub"},
	Short:   "Manage subtasks",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add [task-id] [title...]",
	Short: "Add a subtask to a task",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		subtask, err := a.subtasks.Create(a.owner.ID, id, strings.Join(args[1:], " "))
		if err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Added subtask ") + subtask.Title)
	}),
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle [subtask-id]",
	Short: "Toggle a subtask's completed state",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			id, err = resolveSubtask(a, args[0])
			if err != nil {
				fail(err)
			}
		}
		subtask, err := a.subtasks.Toggle(a.owner.ID, id)
		if err != nil {
			fail(err)
		}
		mark := "[ ]"
		if subtask.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s %s\n", mark, subtask.Title)
	}),
}

var subtaskRemoveCmd = &cobra.Command{
	Use:   "rm [subtask-id]",
	Short: "Delete a subtask",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			id, err = resolveSubtask(a, args[0])
			if err != nil {
				fail(err)
			}
		}
		if err := a.subtasks.Delete(a.owner.ID, id); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Deleted subtask"))
	}),
}

// resolveSubtask expands a subtask id prefix by scanning the owner's
// active snapshot.
func resolveSubtask(a *app, prefix string) (uuid.UUID, error) {
	tasks, err := a.queries.ActiveTasks(a.owner.ID)
	if err != nil {
		return uuid.Nil, err
	}
	var matches []uuid.UUID
	for _, task := range tasks {
		for _, sub := range task.Subtasks {
			if strings.HasPrefix(sub.ID.String(), prefix) {
				matches = append(matches, sub.ID)
			}
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("subtask not found")
	case 1:
		return matches[0], nil
	}
	return uuid.Nil, fmt.Errorf("prefix matches more than one subtask")
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskRemoveCmd)
}
