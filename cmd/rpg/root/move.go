package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <index> <up|down>",
		Short: "Swap a quest with its neighbor in the display order",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("index and direction are required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be an integer")
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

			index, _ := strconv.Atoi(args[0])
			dir, err := engine.ParseDirection(args[1])
			if err != nil {
				return err
			}

			if err := svc.MoveQuest(ctx, index, dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Order updated."))
			return nil
		},
	}

	return cmd
}
