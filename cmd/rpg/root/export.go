package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

// questYAML is the interchange shape for catalog export/import. Ids are not
// carried: imported quests get fresh ids and count as custom.
type questYAML struct {
	Title  string `yaml:"title"`
	Icon   string `yaml:"icon"`
	HP     int    `yaml:"hp"`
	Energy int    `yaml:"energy"`
	XP     int    `yaml:"xp"`
	Custom bool   `yaml:"custom,omitempty"`
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the quest catalog as YAML to stdout",
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

			out := make([]questYAML, 0, len(quests))
			for _, q := range quests {
				out = append(out, questYAML{
					Title:  q.Title,
					Icon:   q.Icon,
					HP:     q.HPImpact,
					Energy: q.EnergyImpact,
					XP:     q.XPImpact,
					Custom: q.IsCustom,
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append quests from a YAML file to the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var in []questYAML
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, q := range in {
				if _, err := svc.CreateQuest(ctx, engine.QuestInput{
					Title:        q.Title,
					Icon:         q.Icon,
					HPImpact:     q.HP,
					EnergyImpact: q.Energy,
					XPImpact:     q.XP,
				}); err != nil {
					return fmt.Errorf("import %q: %w", q.Title, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d quests\n", ui.Good.Render(ui.IconSparkle), len(in))
			return nil
		},
	}

	return cmd
}
