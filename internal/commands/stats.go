package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/stats"
	"github.com/taskwell/taskwell/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		tasks, err := a.queries.ActiveTasks(a.owner.ID)
		if err != nil {
			fail(err)
		}
		completions, err := a.activity.CompletionTimes(a.owner.ID)
		if err != nil {
			fail(err)
		}

		s := stats.Compute(tasks, completions, time.Now())

		fmt.Println(tui.HeaderStyle.Render("Statistics"))
		fmt.Printf("tasks: %d total, %s completed, %d pending\n",
			s.TotalCount,
			tui.SuccessStyle.Render(fmt.Sprintf("%d", s.CompletedCount)),
			s.PendingCount)
		fmt.Printf("completion rate: %d%%   streak: %d day(s)\n", s.CompletionRate, s.Streak)

		fmt.Println(tui.HeaderStyle.Render("\nLast 7 days"))
		for _, day := range s.Productivity {
			fmt.Printf("%s %s %s\n",
				tui.MutedStyle.Render(day.Date.Format("Mon 02 Jan")),
				bar(day.Count),
				countLabel(day.Count))
		}

		fmt.Println(tui.HeaderStyle.Render("\nBest days"))
		names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		for i, count := range s.Weekday {
			fmt.Printf("%s %s %s\n", tui.MutedStyle.Render(names[i]), bar(count), countLabel(count))
		}

		fmt.Println(tui.HeaderStyle.Render("\nBy project"))
		for _, bucket := range s.ByProject {
			fmt.Printf("%-20s %s\n", bucket.Label, countLabel(bucket.Count))
		}

		fmt.Println(tui.HeaderStyle.Render("\nBy priority"))
		for _, bucket := range s.ByPriority {
			fmt.Printf("%s %s\n",
				tui.PriorityStyle(bucket.Label).Render(fmt.Sprintf("%-8s", bucket.Label)),
				countLabel(bucket.Count))
		}
	}),
}

func bar(count int) string {
	if count > 40 {
		count = 40
	}
	return tui.SuccessStyle.Render(strings.Repeat("█", count))
}

func countLabel(count int) string {
	return tui.MutedStyle.Render(fmt.Sprintf("(%d)", count))
}
