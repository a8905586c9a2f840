package marketplace

import (
	"storefront/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Marketplace feature.
func NewFeature(db *gorm.DB, loader *catalog.Loader, catalogName, buyer, views string, logger *zap.Logger) *Feature {
	svc := NewService(db, loader, catalogName, buyer, logger)
	h := NewHandler(svc, views)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "marketplace"
}

// IsEnabled reports whether the store is reachable; without it there is nothing to show.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
