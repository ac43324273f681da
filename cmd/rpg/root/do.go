package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <quest-id>",
		Short: "Perform a quest and apply its stat effects",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required (see `rpg list`)")
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

			res, err := svc.TriggerQuest(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				res.Quest.Icon,
				ui.Good.Render(res.Quest.Title),
				ui.Gold.Render(res.Entry.Impact))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d → %d  %s %d → %d  %s %.1f → %.1f\n",
				ui.Health.Render(ui.IconHeart+" HP"), res.Before.Health, res.After.Health,
				ui.Energy.Render(ui.IconEnergy+" EN"), res.Before.Energy, res.After.Energy,
				ui.XP.Render(ui.IconXP+" XP"), res.Before.Experience, res.After.Experience)
			return nil
		},
	}

	return cmd
}
