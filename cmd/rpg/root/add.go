package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newAddCmd() *cobra.Command {
	var icon string
	var hp, energy, xp int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			q, err := svc.CreateQuest(ctx, engine.QuestInput{
				Title:        args[0],
				Icon:         icon,
				HPImpact:     hp,
				EnergyImpact: energy,
				XPImpact:     xp,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s\n",
				ui.Good.Render(ui.IconSparkle),
				q.Icon, q.Title,
				ui.Muted.Render("("+q.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "⭐", "Quest icon")
	cmd.Flags().IntVar(&hp, "hp", 0, "Health impact per trigger")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy impact per trigger")
	cmd.Flags().IntVar(&xp, "xp", 0, "Raw XP impact per trigger (tenths of a point)")

	return cmd
}
