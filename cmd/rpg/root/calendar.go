package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/storage"
	"liferpg/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Browse the daily history for a month",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one month argument")
			}
			if len(args) == 1 {
				if _, err := time.Parse("2006-01", args[0]); err != nil {
					return errors.New("month must be YYYY-MM")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			month := now.Format("2006-01")
			if len(args) == 1 {
				month = args[0]
			}

			snaps, err := svc.HistoryRepo().ListMonth(ctx, month)
			if err != nil {
				return err
			}
			byDate := make(map[string]storage.DailySnapshot, len(snaps))
			for _, s := range snaps {
				byDate[s.Date] = s
			}

			first, _ := time.ParseInLocation("2006-01", month, time.Local)
			daysIn := first.AddDate(0, 1, -1).Day()
			today := engine.DayKey(now)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, strings.ToUpper(first.Format("January 2006"))))
			fmt.Fprintln(out, ui.Muted.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))

			var row strings.Builder
			for i := 0; i < int(first.Weekday()); i++ {
				row.WriteString("    ")
			}
			for day := 1; day <= daysIn; day++ {
				date := first.AddDate(0, 0, day-1)
				key := engine.DayKey(date)
				cell := fmt.Sprintf("%3d", day)
				switch snap, ok := byDate[key]; {
				case key == today:
					cell = ui.Gold.Render(cell)
				case ok:
					cell = dayStyle(snap).Render(cell)
				default:
					cell = ui.Muted.Render(cell)
				}
				row.WriteString(cell + " ")
				if date.Weekday() == time.Saturday {
					fmt.Fprintln(out, row.String())
					row.Reset()
				}
			}
			if row.Len() > 0 {
				fmt.Fprintln(out, row.String())
			}

			fmt.Fprintln(out, "")
			fmt.Fprintf(out, "%s days with activity: %d\n", ui.IconScroll, len(snaps))
			return nil
		},
	}

	return cmd
}

// dayStyle colors a calendar cell by how the day ended, tracking the
// snapshot's HP band.
func dayStyle(s storage.DailySnapshot) lipgloss.Style {
	switch {
	case s.HP < 3:
		return ui.Bad
	case s.HP > 8:
		return ui.Good
	default:
		return ui.Warn
	}
}
