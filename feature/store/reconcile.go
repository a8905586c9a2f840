package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/feature/catalog"
)

// StockLookup resolves the authoritative stock level of a product id.
type StockLookup interface {
	StockLevel(ctx context.Context, id int64) (int, error)
}

// BudgetLookup resolves the budget of a buyer.
type BudgetLookup interface {
	Budget(ctx context.Context, name string) (float64, error)
}

// Reconcile overlays store stock levels onto catalog products.
//
// The result has the same length and order as products and only StockLevel
// may differ. Products without an id, or whose id is not in the store, keep
// their catalog value. Any other lookup failure aborts the whole call.
// The input slice is not modified.
func Reconcile(ctx context.Context, lookup StockLookup, products []catalog.Product) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(products))
	copy(out, products)

	for i := range out {
		if !out[i].HasID() {
			continue
		}
		level, err := lookup.StockLevel(ctx, *out[i].ID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile product %d: %w", *out[i].ID, err)
		}
		out[i].StockLevel = level
	}
	return out, nil
}

// BudgetOf returns the buyer's budget, or 0 when the buyer is not in the store yet.
func BudgetOf(ctx context.Context, lookup BudgetLookup, name string) (float64, error) {
	budget, err := lookup.Budget(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return budget, nil
}
