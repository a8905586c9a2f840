package marketplace

import (
	"storefront/core/logger"
	"storefront/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the marketplace pages.
type Handler struct {
	service *Service
	views   string
}

// NewHandler creates a new HTTP handler. views is server.ViewsHTML or server.ViewsJSON.
func NewHandler(service *Service, views string) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes registers the marketplace routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleMarketplace)
	app.Get("/buyer", h.HandleBuyer)

	api := app.Group("/api")
	api.Get("/products", h.HandleListProducts)
	api.Get("/buyer", h.HandleGetBuyer)
}

// HandleMarketplace renders the store product listing.
func (h *Handler) HandleMarketplace(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.Listing(c.UserContext())
	if err != nil {
		l.Error("Marketplace listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Marketplace unavailable")
	}

	if h.views == server.ViewsJSON {
		return c.JSON(fiber.Map{"products": products})
	}
	return c.Render("index", fiber.Map{"Products": products})
}

// HandleBuyer renders the buyer page.
func (h *Handler) HandleBuyer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.BuyerView(c.UserContext())
	if err != nil {
		l.Error("Buyer view failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Buyer view unavailable")
	}

	if h.views == server.ViewsJSON {
		return c.JSON(view)
	}
	return c.Render("buyer", view)
}

// HandleListProducts returns the store product listing.
// @Summary List Products
// @Description List every product row of the store with its authoritative stock level.
// @Tags marketplace
// @Produce json
// @Success 200 {array} store.Product "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.Listing(c.UserContext())
	if err != nil {
		l.Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetBuyer returns the buyer's budget and the reconciled catalog.
// @Summary Get Buyer View
// @Description Budget of the configured buyer and the catalog with store stock levels applied.
// @Tags marketplace
// @Produce json
// @Success 200 {object} marketplace.BuyerView "Buyer View"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/buyer [get]
func (h *Handler) HandleGetBuyer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.BuyerView(c.UserContext())
	if err != nil {
		l.Error("Buyer view failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(view)
}
