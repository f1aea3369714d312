package cmd

import (
	"context"
	"fmt"
	"os"

	"army-catalog/core/config"
	"army-catalog/core/database"
	"army-catalog/core/logger"
	"army-catalog/core/storage"
	"army-catalog/feature/armory/source"
	"army-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the source bucket",
	Long:  `Checks that the bucket holds a usable metadata object and a source document for every faction on the roster.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// metadataCmd represents the integrity metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Check the metadata object",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// sourcesCmd represents the integrity sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Reconcile source documents across roster, bucket and cache",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(metadataCmd, sourcesCmd)
}

func runIntegrityChecks(ctx context.Context, runMetadata, runSources bool) {
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

	// Connect the document cache (Optional)
	var cache *source.Cache
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional document cache unavailable", zap.Error(err))
		} else if cache, err = source.NewCache(db); err != nil {
			logg.Warn("Failed to prepare document cache", zap.Error(err))
		}
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Source.Prefix, cache, logg)

	if runMetadata {
		logg.Info("Checking metadata object...")
		report, err := svc.CheckMetadata(ctx)
		if err != nil {
			logg.Fatal("Metadata check failed", zap.Error(err))
		}

		switch {
		case !report.Present:
			logg.Warn("Metadata object is missing", zap.String("error", report.Error))
		case !report.Parsable:
			logg.Warn("Metadata object does not parse", zap.String("error", report.Error))
		default:
			logg.Info("Metadata object is usable",
				zap.Int("factions", report.Factions),
				zap.Int("weapons", report.Weapons),
				zap.Int("skills", report.Skills),
				zap.Int("equips", report.Equips),
				zap.Int("ammunitions", report.Ammunitions),
			)
		}
	}

	if runSources {
		logg.Info("Reconciling source documents...")
		results, err := svc.ReconcileSources(ctx)
		if err != nil {
			logg.Fatal("Source reconciliation failed", zap.Error(err))
		}

		var missing, orphans, malformed, uncached int
		for _, r := range results {
			if r.Malformed {
				malformed++
				logg.Warn("Malformed source document", zap.String("slug", r.Slug))
			}
			switch {
			case r.Expected && !r.InBucket:
				missing++
				logg.Warn("Expected source missing from bucket", zap.String("slug", r.Slug), zap.String("name", r.Name))
			case !r.Expected:
				orphans++
				logg.Warn("Orphan source document", zap.String("slug", r.Slug))
			case !r.InCache:
				uncached++
			}
		}

		if missing == 0 && orphans == 0 && malformed == 0 {
			logg.Info("Source documents are intact.", zap.Int("total", len(results)), zap.Int("uncached", uncached))
		} else {
			logg.Warn("Source document issues detected",
				zap.Int("total", len(results)),
				zap.Int("missing", missing),
				zap.Int("orphans", orphans),
				zap.Int("malformed", malformed),
				zap.Int("uncached", uncached),
			)
		}
	}
}
