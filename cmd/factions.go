package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// factionsCmd represents the factions command
var factionsCmd = &cobra.Command{
	Use:   "factions",
	Short: "List the grouped faction hierarchy",
	Long:  `Builds the catalog and prints every super-group with loaded data, its vanilla faction and its sub-groups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg := initCatalog(cmd.Context())

		groups, err := svc.GroupedFactions()
		if err != nil {
			return err
		}

		logg.Info("Factions listed", zap.Int("groups", len(groups)))
		for _, g := range groups {
			fmt.Printf("%s (%s)\n", g.Name, g.ShortName)
			if g.Vanilla != nil {
				fmt.Printf("  [%d] %s (vanilla)\n", g.Vanilla.ID, g.Vanilla.Name)
			}
			for _, sub := range g.SubGroups {
				fmt.Printf("  [%d] %s (%s)\n", sub.ID, sub.Name, sub.ShortName)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(factionsCmd)
}
