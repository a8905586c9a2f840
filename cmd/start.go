package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront/core/database"
	"storefront/core/loader"
	"storefront/core/logger"
	"storefront/core/middleware/rayid"
	"storefront/feature/integrity"
	"storefront/feature/marketplace"
	"storefront/feature/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "storefront/docs/swagger"
)

// @title Storefront API
// @version 1.0
// @description API for browsing a seller catalog with live stock levels.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storefront server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Connect to the Store
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to store", zap.Error(err))
		}
		defer database.Close(db)

		created, err := store.Initialize(db)
		if err != nil {
			logg.Fatal("Failed to initialize store", zap.Error(err))
		}
		if len(created) > 0 {
			logg.Info("Created store tables", zap.Strings("tables", created))
		}
		logg.Info("Connected to store",
			zap.String("driver", cfg.Database.Driver),
			zap.String("name", cfg.Database.Name))

		// 3. Catalog Source
		catalogs, err := newCatalogLoader(cfg)
		if err != nil {
			logg.Fatal("Failed to create catalog source", zap.Error(err))
		}
		catalogName := cfg.Catalog.Name()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			Views:                 marketplace.NewViews(),
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(marketplace.NewFeature(db, catalogs, catalogName, cfg.Server.Buyer, cfg.Server.Views, logg))
		mgr.Register(integrity.NewFeature(db, catalogs, catalogName, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(logger.Middleware(logg))

		// 3. Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("buyer", cfg.Server.Buyer),
				zap.String("catalog", catalogName))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
