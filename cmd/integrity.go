package cmd

import (
	"fmt"

	"storefront/core/database"
	"storefront/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Compare the catalog with the store",
	Long:  `Reports catalog/store drift (presence, stock mismatches, dangling seller references) and checks the store schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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
		svc := integrity.NewService(db, catalogs, cfg.Catalog.Name(), logg)

		logg.Info("Checking store schema...", zap.String("driver", cfg.Database.Driver))
		schemaReport, err := svc.CheckSchema(ctx)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if schemaReport.Matched {
			logg.Info("Store schema matches the expected definition.")
		} else {
			logg.Warn("Store schema mismatches found")
			for table, tblReport := range schemaReport.Tables {
				switch {
				case tblReport.Status == "missing":
					logg.Warn("Missing Table", zap.String("table", table))
				case tblReport.Status != "ok":
					if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
					if len(tblReport.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
					}
				}
			}
			for _, e := range schemaReport.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}

		logg.Info("Checking catalog drift...", zap.String("catalog", cfg.Catalog.Name()))
		drift, err := svc.CheckCatalog(ctx)
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}

		fmt.Println("\n=== Catalog Integrity Metrics ===")
		fmt.Printf("Seller: %s (%s)\n", drift.Seller, drift.GroupName)
		fmt.Printf("Seller Registered: %t\n", drift.SellerRegistered)
		fmt.Printf("Total Items: %d\n", drift.Summary.TotalItems)
		fmt.Printf("Store Missing: %d\n", drift.Summary.MissingStore)
		fmt.Printf("Catalog Missing: %d\n", drift.Summary.MissingCatalog)
		fmt.Printf("Mismatch: %d\n", drift.Summary.Mismatches)
		fmt.Printf("Unlinked: %d\n", len(drift.Unlinked))
		fmt.Printf("Dangling References: %d\n", len(drift.DanglingReferences))

		for _, r := range drift.Results {
			for _, m := range r.Mismatch {
				logg.Warn("Mismatch", zap.String("id", r.ID), zap.String("name", r.Name), zap.String("field", m))
			}
		}
		for _, d := range drift.DanglingReferences {
			logg.Warn("Dangling Reference", zap.String("reference", d))
		}

		if drift.InSync {
			logg.Info("Catalog and store are in sync.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
