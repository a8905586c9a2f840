package store

import (
	"context"
	"fmt"

	"storefront/feature/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedReport counts the rows inserted by Seed. Rows that already existed are not counted.
type SeedReport struct {
	Sellers  int64 `json:"sellers"`
	Products int64 `json:"products"`
	Buyers   int64 `json:"buyers"`
}

// SeedBuyer is the buyer row created alongside a catalog seed.
type SeedBuyer struct {
	Name   string
	Budget float64
}

// Seed inserts the catalog's seller, its identified products and the buyer.
// Existing rows are kept as they are, so re-seeding never resets stock or budgets.
func Seed(ctx context.Context, db *gorm.DB, seller *catalog.Seller, buyer *SeedBuyer) (*SeedReport, error) {
	report := &SeedReport{}
	tx := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Session(&gorm.Session{})

	if seller != nil {
		group := seller.Group()
		if group == "" {
			return nil, fmt.Errorf("catalog seller has no name or group_name")
		}

		res := tx.Create(&Seller{GroupName: group})
		if res.Error != nil {
			return nil, fmt.Errorf("failed to seed seller %s: %w", group, res.Error)
		}
		report.Sellers = res.RowsAffected

		for _, p := range seller.Products {
			if !p.HasID() {
				continue
			}
			if p.Quantity < 0 {
				return report, fmt.Errorf("product %d has negative quantity %d", *p.ID, p.Quantity)
			}
			res := tx.Create(&Product{ID: *p.ID, SellerGroup: group, StockLevel: p.Quantity})
			if res.Error != nil {
				return report, fmt.Errorf("failed to seed product %d: %w", *p.ID, res.Error)
			}
			report.Products += res.RowsAffected
		}
	}

	if buyer != nil && buyer.Name != "" {
		if buyer.Budget < 0 {
			return report, fmt.Errorf("buyer %s has negative budget", buyer.Name)
		}
		res := tx.Create(&Buyer{Name: buyer.Name, Budget: buyer.Budget})
		if res.Error != nil {
			return report, fmt.Errorf("failed to seed buyer %s: %w", buyer.Name, res.Error)
		}
		report.Buyers = res.RowsAffected
	}

	return report, nil
}
