package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show the snapshot and status for one day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("date is required (YYYY-MM-DD)")
			}
			if _, err := time.Parse("2006-01-02", args[0]); err != nil {
				return errors.New("date must be YYYY-MM-DD")
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

			snap, label, err := svc.DayStatus(ctx, args[0])
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s no activity recorded\n", ui.Muted.Render(args[0]))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, snap.Date))
			fmt.Fprintf(cmd.OutOrStdout(), "%s HP %d  %s Energy %d  %s XP %d\n",
				ui.IconHeart, snap.HP, ui.IconEnergy, snap.Energy, ui.IconXP, snap.XP)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Status", label))
			return nil
		},
	}

	return cmd
}
