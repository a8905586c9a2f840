package reconcile

// Result is the reconciliation output for a single key.
type Result struct {
	// ID is the key shared by both sources.
	ID string `json:"id"`

	// Name is the display name of the entity.
	Name string `json:"name"`

	// CatalogPresent indicates whether the key exists in the catalog.
	CatalogPresent bool `json:"catalog_present"`

	// StorePresent indicates whether the key exists in the store.
	StorePresent bool `json:"store_present"`

	// Mismatch describes fields that differ between the two sources,
	// e.g. "stock_level: catalog=5 store=9".
	Mismatch []string `json:"mismatch"`

	// Metadata carries adapter specific values (e.g. seller group).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CatalogItem is an entity as described by the catalog.
type CatalogItem any

// StoreItem is an entity as held by the store.
type StoreItem any

// Summary provides aggregate counts over a set of results.
type Summary struct {
	// TotalItems is the number of distinct keys across both sources.
	TotalItems int `json:"total_items"`

	// MissingCatalog counts keys only the store knows.
	MissingCatalog int `json:"missing_catalog"`

	// MissingStore counts keys only the catalog knows.
	MissingStore int `json:"missing_store"`

	// Mismatches counts keys present in both with differing fields.
	Mismatches int `json:"mismatches"`
}

// Report bundles per-key results with their summary.
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// InSync reports whether both sources agree on every key.
func (r *Report) InSync() bool {
	return r.Summary.MissingCatalog == 0 && r.Summary.MissingStore == 0 && r.Summary.Mismatches == 0
}
