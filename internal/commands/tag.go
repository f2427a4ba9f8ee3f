package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/tui"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add [task-id] [tag-name]",
	Short: "Attach a tag to a task, creating the tag if needed",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		tag, err := a.tags.AddTag(a.owner.ID, id, args[1])
		if err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Tagged with ") + tag.Name)
	}),
}

var tagRemoveCmd = &cobra.Command{
	Use:   "rm [task-id] [tag-name]",
	Short: "Detach a tag from a task",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		tag, err := findTagByName(a, args[1])
		if err != nil {
			fail(err)
		}
		if err := a.tags.RemoveTag(a.owner.ID, id, tag.ID); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Removed tag ") + tag.Name)
	}),
}

var tagListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tags",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		tags, err := a.tags.List(a.owner.ID)
		if err != nil {
			fail(err)
		}
		if len(tags) == 0 {
			fmt.Println(tui.MutedStyle.Render("No tags yet."))
			return
		}
		for _, tag := range tags {
			fmt.Printf("%s %s %s\n",
				tui.MutedStyle.Render(shortID(tag.ID)),
				tag.Name,
				tui.MutedStyle.Render(tag.Color))
		}
	}),
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete [tag-name]",
	Short: "Delete a tag, detaching it from every task",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		tag, err := findTagByName(a, args[0])
		if err != nil {
			fail(err)
		}
		if err := a.tags.Delete(a.owner.ID, tag.ID); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Deleted tag ") + tag.Name)
	}),
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
