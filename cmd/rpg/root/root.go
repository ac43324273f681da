package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rpg",
	Short:         "Life RPG — turn daily habits into quests",
	Long:          "Life RPG is a local-first habit tracker: small real-life actions adjust health, energy and experience, with a daily history calendar.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newDoCmd(),
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newMoveCmd(),
		newListCmd(),
		newStatusCmd(),
		newCalendarCmd(),
		newDayCmd(),
		newResetCmd(),
		newExportCmd(),
		newImportCmd(),
		newHomeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
