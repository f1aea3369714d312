package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"army-catalog/core/config"
	"army-catalog/core/storage"
	"army-catalog/feature/armory/catalog"
	"army-catalog/feature/armory/source"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_suggest <query>")
	}
	query := os.Args[1]

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	// Create storage client
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	loader := source.NewLoader(client, cfg.Storage.Bucket, cfg.Source, nil, zap.NewNop())

	result, err := loader.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.New(result.Metadata)
	for _, doc := range result.Documents {
		if doc.Doc.Filters != nil {
			cat.RegisterExtras(doc.Doc.Filters.Extras)
		}
		cat.Ingest(doc.Doc.Units)
	}
	cat.BuildSuggestions()

	fmt.Printf("=== Catalog: %d units, %d skipped ===\n", cat.UnitCount(), len(cat.Skipped()))

	suggestions := cat.Suggest(query)
	fmt.Printf("=== Suggestions for %q: %d entries ===\n", query, len(suggestions))
	for i, s := range suggestions {
		marker := " "
		if s.AnyVariant {
			marker = "*"
		}
		fmt.Printf("%3d %s %-50s type=%-10s id=%-5d extras=%v\n", i, marker, s.Display, s.Type, s.ID, s.Extras)
	}

	// Show which units carry the top suggestion
	if len(suggestions) > 0 {
		top := suggestions[0]
		filter := catalog.Filter{Type: top.Type, ID: top.ID, Extras: top.Extras, MatchAnyExtra: top.AnyVariant}
		units := cat.Search([]catalog.Filter{filter}, catalog.OpAnd)
		fmt.Printf("=== Units matching top suggestion ===\n")
		for _, u := range units {
			fmt.Printf("  %s (%s)\n", u.Name, u.ISC)
		}
	}
}
