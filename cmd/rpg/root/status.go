package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/oracle"
	"liferpg/internal/ui"
)

const oracleTimeout = 2 * time.Second

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show current stats, today's status and the oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s HEALTH  %s %2d/%d\n", ui.IconHeart, ui.StatBar(stats.Health, engine.MaxStat, ui.Health), stats.Health, engine.MaxStat)
			fmt.Fprintf(cmd.OutOrStdout(), "%s ENERGY  %s %2d/%d\n", ui.IconEnergy, ui.StatBar(stats.Energy, engine.MaxStat, ui.Energy), stats.Energy, engine.MaxStat)
			fmt.Fprintf(cmd.OutOrStdout(), "%s XP      %s %4.1f/%d\n", ui.IconXP, ui.StatBar(int(stats.Experience), engine.MaxStat, ui.XP), stats.Experience, engine.MaxStat)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			today := engine.DayKey(time.Now())
			snap, label, err := svc.DayStatus(ctx, today)
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", ui.Muted.Render("no quests done yet")))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", label))
			}

			if cfg.Oracle {
				octx, cancel := context.WithTimeout(ctx, oracleTimeout)
				defer cancel()
				msg := oracle.Fetch(octx, oracle.Static{}, stats.Health, stats.Energy)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconOracle, ui.Gold.Render(msg))
			}
			return nil
		},
	}

	return cmd
}
