package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/tui"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage task comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add [task-id] [content...]",
	Short: "Add a comment to a task",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		if _, err := a.comments.Add(a.owner.ID, id, strings.Join(args[1:], " ")); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Comment added"))
	}),
}

var commentEditCmd = &cobra.Command{
	Use:   "edit [comment-id] [content...]",
	Short: "Rewrite a comment",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := resolveComment(a, args[0])
		if err != nil {
			fail(err)
		}
		if _, err := a.comments.Update(a.owner.ID, id, strings.Join(args[1:], " ")); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Comment updated"))
	}),
}

var commentRemoveCmd = &cobra.Command{
	Use:   "rm [comment-id]",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := resolveComment(a, args[0])
		if err != nil {
			fail(err)
		}
		if err := a.comments.Delete(a.owner.ID, id); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Comment deleted"))
	}),
}

func resolveComment(a *app, prefix string) (uuid.UUID, error) {
	if id, err := uuid.Parse(prefix); err == nil {
		return id, nil
	}
	tasks, err := a.queries.ActiveTasks(a.owner.ID)
	if err != nil {
		return uuid.Nil, err
	}
	var matches []uuid.UUID
	for _, task := range tasks {
		for _, comment := range task.Comments {
			if strings.HasPrefix(comment.ID.String(), prefix) {
				matches = append(matches, comment.ID)
			}
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("comment not found")
	case 1:
		return matches[0], nil
	}
	return uuid.Nil, fmt.Errorf("prefix matches more than one comment")
}

func init() {
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentRemoveCmd)
}
