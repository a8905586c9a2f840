package integrity

import (
	"context"

	"storefront/feature/catalog"
	"storefront/feature/integrity/checks"
	"storefront/feature/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db          *gorm.DB
	loader      *catalog.Loader
	catalogName string
	logger      *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, loader *catalog.Loader, catalogName string, logger *zap.Logger) *Service {
	return &Service{
		db:          db,
		loader:      loader,
		catalogName: catalogName,
		logger:      logger,
	}
}

// CheckCatalog compares the configured catalog with the store.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.DriftReport, error) {
	seller, err := s.loader.LoadSeller(ctx, s.catalogName)
	if err != nil {
		return nil, err
	}

	var report *checks.DriftReport
	err = store.WithConnection(ctx, s.db, func(st *store.Store) error {
		var err error
		report, err = checks.CheckDrift(ctx, st, seller)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// CheckSchema compares the live tables with the store models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return checks.CheckSchema(nil)
	}
	return checks.CheckSchema(s.db.WithContext(ctx))
}
