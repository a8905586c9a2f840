package checks

import (
	"context"
	"fmt"
	"strconv"

	"storefront/core/reconcile"
	"storefront/feature/catalog"
	"storefront/feature/store"
)

// DriftReport describes how far the store has drifted from the catalog.
type DriftReport struct {
	Seller           string             `json:"seller"`
	GroupName        string             `json:"group_name"`
	InSync           bool               `json:"in_sync"`
	SellerRegistered bool               `json:"seller_registered"`
	Summary          reconcile.Summary  `json:"summary"`
	Results          []reconcile.Result `json:"results"`
	// Unlinked lists catalog products without an identifier; the store cannot hold them.
	Unlinked []string `json:"unlinked"`
	// DanglingReferences lists store products whose seller_group has no sellers row.
	DanglingReferences []string `json:"dangling_references"`
}

// ProductAdapter reconciles catalog products against store product rows by id.
type ProductAdapter struct {
	seller *catalog.Seller
	store  *store.Store
}

// NewProductAdapter creates an adapter over one seller catalog and a store handle.
func NewProductAdapter(seller *catalog.Seller, st *store.Store) *ProductAdapter {
	return &ProductAdapter{seller: seller, store: st}
}

func (a *ProductAdapter) Name() string {
	return "products"
}

func (a *ProductAdapter) LoadCatalogIndex(_ context.Context) (map[string]reconcile.CatalogItem, error) {
	index := make(map[string]reconcile.CatalogItem, len(a.seller.Products))
	for _, p := range a.seller.Products {
		if !p.HasID() {
			continue
		}
		key := strconv.FormatInt(*p.ID, 10)
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = p
	}
	return index, nil
}

func (a *ProductAdapter) LoadStoreIndex(ctx context.Context) (map[string]reconcile.StoreItem, error) {
	products, err := a.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]reconcile.StoreItem, len(products))
	for _, p := range products {
		index[strconv.FormatInt(p.ID, 10)] = p
	}
	return index, nil
}

func (a *ProductAdapter) ResolveName(c reconcile.CatalogItem, _ reconcile.StoreItem) string {
	if p, ok := c.(catalog.Product); ok {
		return p.Name
	}
	return ""
}

func (a *ProductAdapter) CompareFields(c reconcile.CatalogItem, s reconcile.StoreItem) []string {
	cp := c.(catalog.Product)
	sp := s.(store.Product)

	var mismatches []string
	if cp.StockLevel != sp.StockLevel {
		mismatches = append(mismatches, fmt.Sprintf("stock_level: catalog=%d store=%d", cp.StockLevel, sp.StockLevel))
	}
	if group := a.seller.Group(); group != sp.SellerGroup {
		mismatches = append(mismatches, fmt.Sprintf("seller_group: catalog=%s store=%s", group, sp.SellerGroup))
	}
	return mismatches
}

func (a *ProductAdapter) GetMetadata(_ reconcile.CatalogItem, s reconcile.StoreItem) map[string]string {
	if sp, ok := s.(store.Product); ok {
		return map[string]string{"seller_group": sp.SellerGroup}
	}
	return nil
}

// CheckDrift compares a seller catalog with the store. It only reads from the store.
func CheckDrift(ctx context.Context, st *store.Store, seller *catalog.Seller) (*DriftReport, error) {
	result, err := reconcile.ReconcileAll(ctx, NewProductAdapter(seller, st))
	if err != nil {
		return nil, err
	}

	sellers, err := st.Sellers(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(sellers))
	for _, s := range sellers {
		known[s.GroupName] = true
	}

	report := &DriftReport{
		Seller:             seller.Name,
		GroupName:          seller.Group(),
		SellerRegistered:   known[seller.Group()],
		Summary:            result.Summary,
		Results:            result.Results,
		Unlinked:           []string{},
		DanglingReferences: []string{},
	}

	for _, p := range seller.Products {
		if !p.HasID() {
			report.Unlinked = append(report.Unlinked, p.Name)
		}
	}

	for _, r := range result.Results {
		group, ok := r.Metadata["seller_group"]
		if ok && !known[group] {
			report.DanglingReferences = append(report.DanglingReferences,
				fmt.Sprintf("product %s: seller_group %q", r.ID, group))
		}
	}

	report.InSync = result.InSync() && report.SellerRegistered && len(report.DanglingReferences) == 0
	return report, nil
}
