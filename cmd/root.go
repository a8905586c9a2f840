package cmd

import (
	"fmt"
	"os"

	"storefront/core/config"
	"storefront/core/logger"
	"storefront/core/storage"
	"storefront/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront Service",
	Long: `Storefront serves a seller's catalog to a buyer.
Product descriptions come from a TOML catalog, stock levels and budgets from the store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable timestamps for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// newCatalogLoader returns a loader over the configured catalog source.
func newCatalogLoader(cfg *config.Config) (*catalog.Loader, error) {
	if cfg.Catalog.Source != catalog.SourceStorage {
		return catalog.NewLoader(catalog.FileSource{}), nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return catalog.NewLoader(catalog.NewBucketSource(client, cfg.Storage.Bucket)), nil
}
