package cmd

import (
	"fmt"

	"storefront/core/database"
	"storefront/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initDBCmd represents the init-db command
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the store tables",
	Long: `Creates the buyers, sellers and products tables when they are missing.
Existing tables are left untouched. With --seed, the seller and its identified products
are copied from the catalog and the configured buyer is created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		seed, _ := cmd.Flags().GetBool("seed")
		budget, _ := cmd.Flags().GetFloat64("buyer-budget")

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer database.Close(db)

		created, err := store.Initialize(db)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			logg.Info("Store tables already exist")
		} else {
			logg.Info("Created store tables", zap.Strings("tables", created))
		}

		if !seed {
			return nil
		}

		catalogs, err := newCatalogLoader(cfg)
		if err != nil {
			return err
		}
		seller, err := catalogs.LoadSeller(ctx, cfg.Catalog.Name())
		if err != nil {
			return err
		}

		report, err := store.Seed(ctx, db, seller, &store.SeedBuyer{Name: cfg.Server.Buyer, Budget: budget})
		if err != nil {
			return err
		}

		logg.Info("Store seeded",
			zap.String("seller", seller.Group()),
			zap.Int64("sellers", report.Sellers),
			zap.Int64("products", report.Products),
			zap.Int64("buyers", report.Buyers))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initDBCmd)
	initDBCmd.Flags().Bool("seed", false, "Seed seller, products and buyer from the catalog")
	initDBCmd.Flags().Float64("buyer-budget", 0, "Budget of the seeded buyer")
}
