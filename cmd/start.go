package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"army-catalog/core/config"
	"army-catalog/core/database"
	"army-catalog/core/loader"
	"army-catalog/core/logger"
	"army-catalog/core/middleware/auth"
	"army-catalog/core/middleware/rayid"
	"army-catalog/core/storage"

	"army-catalog/feature/armory"
	"army-catalog/feature/armory/source"
	"army-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "army-catalog/docs/swagger"
)

// @title Army Catalog API
// @version 1.0
// @description API for searching and browsing army unit data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the army catalog server",
	Long:  `Loads the source documents, builds the catalog and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the local document cache (Optional)
		cache := openCache(cfg, logg)

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		armoryFeature := armory.NewFeature(store, cfg.Storage.Bucket, cfg.Source, cache, logg)
		mgr.Register(armoryFeature)
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Source.Prefix, cache, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Build the catalog. A metadata failure is fatal; individual
		// source failures have already degraded to "no data".
		if err := armoryFeature.Service().Init(cmd.Context()); err != nil {
			logg.Fatal("Failed to build catalog", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// openCache connects the local document cache. The cache is optional:
// any failure degrades to running without fallback copies.
func openCache(cfg *config.Config, logg *zap.Logger) *source.Cache {
	if !cfg.Database.Enabled {
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional document cache unavailable", zap.Error(err))
		return nil
	}

	cache, err := source.NewCache(db)
	if err != nil {
		logg.Warn("Failed to prepare document cache", zap.Error(err))
		return nil
	}
	return cache
}

func init() {
	RootCmd.AddCommand(startCmd)
}
