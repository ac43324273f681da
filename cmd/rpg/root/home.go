package root

import (
	"context"

	"github.com/spf13/cobra"

	"liferpg/internal/oracle"
	"liferpg/internal/tui"
)

func newHomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the interactive home screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var provider oracle.Provider
			if cfg.Oracle {
				provider = oracle.Static{}
			}
			return tui.RunHome(ctx, svc, provider, cmd.OutOrStdout())
		},
	}

	return cmd
}
