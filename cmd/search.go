package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"army-catalog/core/config"
	"army-catalog/core/database"
	"army-catalog/core/logger"
	"army-catalog/core/storage"
	"army-catalog/feature/armory"
	"army-catalog/feature/armory/catalog"
	"army-catalog/feature/armory/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchOpFlag string
var searchAnyFlag bool

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [filter...]",
	Short: "Search the unit catalog",
	Long: `Builds the catalog from the configured bucket and evaluates a filter set.

Each filter has the form type:id[:extras], where type is one of weapon,
skill, equipment or ammunition and extras is a comma-separated modifier
list, e.g.:

  army-catalog search skill:28:6 --op and
  army-catalog search weapon:12 skill:28 --op or --any`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := catalog.ParseOperator(searchOpFlag)
		if err != nil {
			return err
		}

		filters := make([]catalog.Filter, 0, len(args))
		for _, arg := range args {
			f, err := parseFilterArg(arg)
			if err != nil {
				return err
			}
			if searchAnyFlag {
				f.MatchAnyExtra = true
			}
			filters = append(filters, f)
		}

		svc, logg := initCatalog(cmd.Context())

		units, err := svc.Search(filters, op)
		if err != nil {
			return err
		}

		logg.Info("Search finished", zap.Int("matches", len(units)))
		for _, u := range units {
			fmt.Printf("%-40s %-30s %d-%d pts  factions=%v\n", u.Name, u.ISC, u.MinPoints, u.MaxPoints, u.FactionIDs)
		}
		return nil
	},
}

// parseFilterArg parses a type:id[:extras] argument.
func parseFilterArg(arg string) (catalog.Filter, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) < 2 {
		return catalog.Filter{}, fmt.Errorf("invalid filter %q, expected type:id[:extras]", arg)
	}

	var itemType catalog.ItemType
	switch strings.ToLower(parts[0]) {
	case "weapon":
		itemType = catalog.ItemWeapon
	case "skill":
		itemType = catalog.ItemSkill
	case "equipment", "equip":
		itemType = catalog.ItemEquipment
	case "ammunition", "ammo":
		itemType = catalog.ItemAmmo
	default:
		return catalog.Filter{}, fmt.Errorf("unknown item type %q", parts[0])
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return catalog.Filter{}, fmt.Errorf("invalid item id %q", parts[1])
	}

	filter := catalog.Filter{Type: itemType, ID: id}
	if len(parts) == 3 && parts[2] != "" {
		for _, raw := range strings.Split(parts[2], ",") {
			extra, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return catalog.Filter{}, fmt.Errorf("invalid modifier %q", raw)
			}
			filter.Extras = append(filter.Extras, extra)
		}
	}
	return filter, nil
}

// initCatalog bootstraps the armory service for CLI commands and builds
// the catalog. Any failure is fatal.
func initCatalog(ctx context.Context) (*armory.Service, *zap.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	var cache *source.Cache
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional document cache unavailable", zap.Error(err))
		} else if cache, err = source.NewCache(db); err != nil {
			logg.Warn("Failed to prepare document cache", zap.Error(err))
		}
	}

	feature := armory.NewFeature(store, cfg.Storage.Bucket, cfg.Source, cache, logg)
	if err := feature.Service().Init(ctx); err != nil {
		logg.Fatal("Failed to build catalog", zap.Error(err))
	}
	return feature.Service(), logg
}

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchOpFlag, "op", "and", "Filter combination operator (and, or)")
	searchCmd.Flags().BoolVar(&searchAnyFlag, "any", false, "Match any modifier variant of each item")
}
