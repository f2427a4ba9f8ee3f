package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/stats"
	"github.com/taskwell/taskwell/internal/tui"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the next tasks due",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = a.cfg.UpcomingLimit
		}

		tasks, err := a.queries.ActiveTasks(a.owner.ID)
		if err != nil {
			fail(err)
		}
		due := stats.Upcoming(tasks, time.Now(), limit)
		if len(due) == 0 {
			fmt.Println(tui.MutedStyle.Render("Nothing due. Enjoy the quiet."))
			return
		}
		printTaskTable(due)
	}),
}

func init() {
	upcomingCmd.Flags().IntP("limit", "n", 0, "Number of tasks to show")
}
