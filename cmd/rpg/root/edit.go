package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title, icon string
	var hp, energy, xp int

	cmd := &cobra.Command{
		Use:   "edit <quest-id>",
		Short: "Replace a quest's fields (identity kept)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			// Unset flags fall back to the current values: edit is a
			// full replace, but the CLI lets you change one field.
			cur, err := svc.QuestRepo().Get(ctx, args[0])
			if err != nil {
				return err
			}
			if cur == nil {
				return engine.NotFoundError{Kind: "quest", ID: args[0]}
			}

			in := engine.QuestInput{
				Title:        cur.Title,
				Icon:         cur.Icon,
				HPImpact:     cur.HPImpact,
				EnergyImpact: cur.EnergyImpact,
				XPImpact:     cur.XPImpact,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("icon") {
				in.Icon = icon
			}
			if cmd.Flags().Changed("hp") {
				in.HPImpact = hp
			}
			if cmd.Flags().Changed("energy") {
				in.EnergyImpact = energy
			}
			if cmd.Flags().Changed("xp") {
				in.XPImpact = xp
			}

			q, err := svc.UpdateQuest(ctx, args[0], in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s %s\n", ui.Good.Render(ui.IconSparkle), q.Icon, q.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New icon")
	cmd.Flags().IntVar(&hp, "hp", 0, "New health impact")
	cmd.Flags().IntVar(&energy, "energy", 0, "New energy impact")
	cmd.Flags().IntVar(&xp, "xp", 0, "New raw XP impact")

	return cmd
}
