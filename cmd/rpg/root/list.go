package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the quest catalog in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.Quests(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Daily Quests"))
			for i, q := range quests {
				tag := ""
				if q.IsCustom {
					tag = " " + ui.Muted.Render("(custom)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %-12s %s%s %s%s %s%s  %s%s\n",
					i, q.Icon, q.Title,
					ui.IconHeart, ui.Signed(q.HPImpact),
					ui.IconEnergy, ui.Signed(q.EnergyImpact),
					ui.IconXP, ui.Signed(q.XPImpact),
					ui.Muted.Render(q.ID), tag)
			}
			return nil
		},
	}

	return cmd
}
