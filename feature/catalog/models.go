package catalog

import "errors"

var (
	// ErrNotFound is returned when the catalog document does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrParse is returned when the catalog document is malformed.
	ErrParse = errors.New("catalog malformed")
)

// Seller is the [seller] table of a catalog document.
type Seller struct {
	Name        string    `toml:"name" json:"name"`
	GroupName   string    `toml:"group_name" json:"group_name"`
	Description string    `toml:"description" json:"description,omitempty"`
	Products    []Product `toml:"products" json:"products"`
}

// Group returns the seller group used as the store key, falling back to the name.
func (s Seller) Group() string {
	if s.GroupName != "" {
		return s.GroupName
	}
	return s.Name
}

// Product is one [[seller.products]] entry.
type Product struct {
	// ID links the entry to the store's products table. Optional.
	ID       *int64  `toml:"id" json:"id,omitempty"`
	Name     string  `toml:"name" json:"name"`
	Price    float64 `toml:"price" json:"price"`
	Quantity int     `toml:"quantity" json:"quantity"`
	// StockLevel starts as Quantity and is overwritten by the store on reconcile.
	StockLevel int `toml:"-" json:"stock_level"`
}

// HasID reports whether the product carries a store identifier.
// An id of 0 counts as absent.
func (p Product) HasID() bool {
	return p.ID != nil && *p.ID != 0
}

// document is the top level of a catalog file.
type document struct {
	Seller *Seller `toml:"seller"`
}
