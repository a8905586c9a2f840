package reconcile

import "context"

// Adapter defines the model-specific side of a reconciliation between the
// catalog and the store.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g. "products").
	Name() string

	// LoadCatalogIndex returns the catalog entities indexed by key.
	LoadCatalogIndex(ctx context.Context) (map[string]CatalogItem, error)

	// LoadStoreIndex returns the store entities indexed by key.
	LoadStoreIndex(ctx context.Context) (map[string]StoreItem, error)

	// ResolveName returns the display name for a key. Either item may be nil.
	ResolveName(catalogItem CatalogItem, storeItem StoreItem) string

	// CompareFields lists the fields that differ. Both items are non-nil.
	CompareFields(catalogItem CatalogItem, storeItem StoreItem) []string

	// GetMetadata returns extra values for the result. Either item may be nil.
	GetMetadata(catalogItem CatalogItem, storeItem StoreItem) map[string]string
}
