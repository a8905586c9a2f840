package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"storefront/core/database"
	"storefront/core/storage"
	"storefront/feature/catalog"
	"storefront/feature/marketplace"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the catalog as the configured buyer sees it",
	Long:  `Loads the catalog, overlays the store's stock levels and prints it with the buyer's budget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		catalogs, err := newCatalogLoader(cfg)
		if err != nil {
			return err
		}

		svc := marketplace.NewService(db, catalogs, cfg.Catalog.Name(), cfg.Server.Buyer, logg)
		view, err := svc.BuyerView(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("\n=== %s ===\n", view.Seller)
		fmt.Printf("Buyer: %s\n", view.BuyerName)
		fmt.Printf("Balance: %.2f\n\n", view.Budget)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
		for _, p := range view.Products {
			id := "-"
			if p.HasID() {
				id = fmt.Sprint(*p.ID)
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", id, p.Name, p.Price, p.StockLevel)
		}
		return w.Flush()
	},
}

// catalogPushCmd represents the catalog push command
var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local catalog to the storage bucket",
	Long:  `Validates the local catalog file and uploads it as the configured catalog object, creating the bucket when missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		seller, err := catalog.Publish(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Catalog.Object, cfg.Catalog.Path)
		if err != nil {
			return err
		}

		logg.Info("Catalog published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", cfg.Catalog.Object),
			zap.String("seller", seller.Name),
			zap.Int("products", len(seller.Products)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogPushCmd)
}
