package marketplace

import (
	"context"

	"storefront/feature/catalog"
	"storefront/feature/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuyerView is what the buyer page shows: the buyer's budget next to the reconciled catalog.
type BuyerView struct {
	BuyerName string            `json:"buyer_name"`
	Budget    float64           `json:"buyer_balance"`
	Seller    string            `json:"seller"`
	Products  []catalog.Product `json:"products"`
}

// Service composes the catalog and the store for the marketplace pages.
type Service struct {
	db          *gorm.DB
	loader      *catalog.Loader
	catalogName string
	buyer       string
	logger      *zap.Logger
}

// NewService creates a new marketplace service.
func NewService(db *gorm.DB, loader *catalog.Loader, catalogName, buyer string, logger *zap.Logger) *Service {
	return &Service{
		db:          db,
		loader:      loader,
		catalogName: catalogName,
		buyer:       buyer,
		logger:      logger,
	}
}

// Listing returns every product row of the store.
func (s *Service) Listing(ctx context.Context) ([]store.Product, error) {
	var products []store.Product
	err := store.WithConnection(ctx, s.db, func(st *store.Store) error {
		var err error
		products, err = st.Products(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// BuyerView loads the catalog and overlays the store's stock levels and the buyer's budget.
func (s *Service) BuyerView(ctx context.Context) (*BuyerView, error) {
	seller, err := s.loader.LoadSeller(ctx, s.catalogName)
	if err != nil {
		return nil, err
	}

	view := &BuyerView{BuyerName: s.buyer, Seller: seller.Name}
	err = store.WithConnection(ctx, s.db, func(st *store.Store) error {
		budget, err := store.BudgetOf(ctx, st, s.buyer)
		if err != nil {
			return err
		}
		products, err := store.Reconcile(ctx, st, seller.Products)
		if err != nil {
			return err
		}
		view.Budget = budget
		view.Products = products
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Buyer view built",
		zap.String("buyer", s.buyer),
		zap.Int("products", len(view.Products)))
	return view, nil
}
