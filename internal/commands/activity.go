package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/activity"
	"github.com/taskwell/taskwell/internal/tui"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity timeline",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		entries, err := a.activity.List(a.owner.ID)
		if err != nil {
			fail(err)
		}
		if len(entries) == 0 {
			fmt.Println(tui.MutedStyle.Render("No activity yet."))
			return
		}

		// Group by local calendar day for display.
		for i := range entries {
			entries[i].Timestamp = entries[i].Timestamp.Local()
		}

		for _, group := range activity.Timeline(entries) {
			fmt.Println(tui.HeaderStyle.Render(group.Date.Format("Monday, 2 January 2006")))
			for _, entry := range group.Entries {
				fmt.Printf("  %s %s %s\n",
					tui.MutedStyle.Render(entry.Timestamp.Local().Format("15:04")),
					activity.Label(entry),
					tui.MutedStyle.Render("— "+entry.Details))
			}
		}
	}),
}
