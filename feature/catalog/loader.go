package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Loader parses seller catalogs from a Source.
type Loader struct {
	source Source
}

// NewLoader creates a loader reading from source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// LoadSeller reads and parses the named catalog document.
func (l *Loader) LoadSeller(ctx context.Context, name string) (*Seller, error) {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}
	return Parse(name, data)
}

// Load returns the products of the named catalog in file order.
func (l *Loader) Load(ctx context.Context, name string) ([]Product, error) {
	seller, err := l.LoadSeller(ctx, name)
	if err != nil {
		return nil, err
	}
	return seller.Products, nil
}

// Load reads the products of a catalog file on the local filesystem.
func Load(path string) ([]Product, error) {
	return NewLoader(FileSource{}).Load(context.Background(), path)
}

// Parse decodes a catalog document. name is only used in error messages.
func Parse(name string, data []byte) (*Seller, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	if doc.Seller == nil {
		return nil, fmt.Errorf("%w: %s: missing [seller] table", ErrParse, name)
	}

	seller := doc.Seller
	if seller.Products == nil {
		seller.Products = []Product{}
	}
	for i := range seller.Products {
		seller.Products[i].StockLevel = seller.Products[i].Quantity
	}
	return seller, nil
}
