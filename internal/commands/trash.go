package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/tui"
)

var rmCmd = &cobra.Command{
	Use:   "rm [task-id]",
	Short: "Move a task to the trash",
	Long:  "Soft-delete a task. Trashed tasks can be restored for 30 days before they are purged for good.",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		if err := a.lifecycle.SoftDelete(a.owner.ID, id); err != nil {
			fail(err)
		}
		fmt.Println(tui.WarningStyle.Render("🗑 Moved to trash: ") + tui.MutedStyle.Render(shortID(id)))
	}),
}

var restoreCmd = &cobra.Command{
	Use:   "restore [task-id...]",
	Short: "Restore trashed tasks",
	Long:  "Restore one or more tasks from the trash. With several ids the restore is all-or-nothing.",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ids := resolveTasks(a, args, true)
		if len(ids) == 1 {
			if err := a.lifecycle.Restore(a.owner.ID, ids[0]); err != nil {
				fail(err)
			}
		} else if err := a.lifecycle.BulkRestore(a.owner.ID, ids); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Restored %d task(s)", len(ids))))
	}),
}

var purgeCmd = &cobra.Command{
	Use:   "purge [task-id...]",
	Short: "Permanently delete trashed tasks",
	Long:  "Purge trashed tasks along with their subtasks and comments. Irreversible. With several ids the purge is all-or-nothing.",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ids := resolveTasks(a, args, true)
		if len(ids) == 1 {
			if err := a.lifecycle.Purge(a.owner.ID, ids[0]); err != nil {
				fail(err)
			}
		} else if err := a.lifecycle.BulkPurge(a.owner.ID, ids); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Purged %d task(s)", len(ids))))
	}),
}

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "List trashed tasks",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if empty, _ := cmd.Flags().GetBool("empty"); empty {
			purged, err := a.lifecycle.EmptyTrash(a.owner.ID)
			if err != nil {
				fail(err)
			}
			fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Emptied trash (%d task(s) purged)", purged)))
			return
		}

		trashed, err := a.lifecycle.ListTrash(a.owner.ID)
		if err != nil {
			fail(err)
		}
		if len(trashed) == 0 {
			fmt.Println(tui.MutedStyle.Render("Trash is empty."))
			return
		}

		fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("%-9s %-40s %-12s %s", "ID", "TITLE", "DELETED", "PURGES IN")))
		for _, item := range trashed {
			title := item.Task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			fmt.Printf("%-9s %-40s %-12s %s\n",
				tui.MutedStyle.Render(shortID(item.Task.ID)),
				title,
				item.Task.DeletedAt.Time.Local().Format("2006-01-02"),
				tui.WarningStyle.Render(fmt.Sprintf("%d days", item.DaysLeft)))
		}
	}),
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Purge tasks whose retention window has expired",
	Long:  "Run the retention sweep: permanently remove every trashed task deleted more than the retention window ago. Intended for schedulers (cron); safe to re-run.",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		purged, err := a.lifecycle.RetentionSweep(time.Now().UTC())
		if err != nil {
			fail(err)
		}
		fmt.Printf("Sweep purged %d task(s)\n", purged)
	}),
}

// resolveTasks expands id prefixes, optionally against the trash too.
func resolveTasks(a *app, args []string, includeTrashed bool) []uuid.UUID {
	ids := make([]uuid.UUID, len(args))
	for i, arg := range args {
		id, err := a.resolveTask(arg, includeTrashed)
		if err != nil {
			fail(err)
		}
		ids[i] = id
	}
	return ids
}

func init() {
	trashCmd.Flags().Bool("empty", false, "Purge everything in the trash")
}
