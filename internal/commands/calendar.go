package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/stats"
	"github.com/taskwell/taskwell/internal/tui"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the month grid with due tasks",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if monthFlag, _ := cmd.Flags().GetString("month"); monthFlag != "" {
			parsed, err := time.Parse("2006-01", monthFlag)
			if err != nil {
				fail(fmt.Errorf("invalid month %q, use yyyy-mm", monthFlag))
			}
			year, month = parsed.Year(), parsed.Month()
		}

		tasks, err := a.queries.ActiveTasks(a.owner.ID)
		if err != nil {
			fail(err)
		}
		cells := stats.CalendarGrid(tasks, year, month, now.Location())

		fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("%s %d", month, year)))
		fmt.Println(tui.MutedStyle.Render(" Mon  Tue  Wed  Thu  Fri  Sat  Sun"))

		today := now.Format("2006-01-02")
		var row strings.Builder
		for i, cell := range cells {
			label := fmt.Sprintf("%3d", cell.Date.Day())
			switch {
			case cell.Date.Format("2006-01-02") == today:
				label = tui.HeaderStyle.Render(label)
			case cell.Month != stats.CurrentMonth:
				label = tui.MutedStyle.Render(label)
			}
			if len(cell.Tasks) > 0 {
				label += tui.WarningStyle.Render("•")
			} else {
				label += " "
			}
			row.WriteString(label + " ")
			if (i+1)%7 == 0 {
				fmt.Println(row.String())
				row.Reset()
			}
		}

		// Detail lines for days with due tasks in the target month.
		for _, cell := range cells {
			if cell.Month != stats.CurrentMonth || len(cell.Tasks) == 0 {
				continue
			}
			fmt.Println(tui.MutedStyle.Render(cell.Date.Format("2006-01-02")))
			for _, task := range cell.Tasks {
				fmt.Printf("  %s %s\n", tui.MutedStyle.Render(shortID(task.ID)), task.Title)
			}
		}
	}),
}

func init() {
	calendarCmd.Flags().StringP("month", "m", "", "Target month as yyyy-mm (default: current)")
}
