package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is an explicit handle over the relational tables.
type Store struct {
	db *gorm.DB
}

// New wraps db in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithConnection runs fn against a Store bound to a single pooled connection.
// The connection is returned to the pool when fn returns, whatever the outcome.
func WithConnection(ctx context.Context, db *gorm.DB, fn func(*Store) error) error {
	if db == nil {
		return errors.New("database connection is nil")
	}
	return db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// StockLevel returns the stock level of product id, or ErrNotFound.
func (s *Store) StockLevel(ctx context.Context, id int64) (int, error) {
	var p Product
	err := s.db.WithContext(ctx).Select("id", "stock_level").Where("id = ?", id).Take(&p).Error
	if err != nil {
		return 0, notFound(err, "product %d", id)
	}
	return p.StockLevel, nil
}

// Budget returns the budget of the named buyer, or ErrNotFound.
func (s *Store) Budget(ctx context.Context, name string) (float64, error) {
	var b Buyer
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&b).Error
	if err != nil {
		return 0, notFound(err, "buyer %q", name)
	}
	return b.Budget, nil
}

// Products returns every store product ordered by id.
func (s *Store) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Sellers returns every seller ordered by group name.
func (s *Store) Sellers(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	if err := s.db.WithContext(ctx).Order("group_name").Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return sellers, nil
}

func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to look up %s: %w", what, err)
}
