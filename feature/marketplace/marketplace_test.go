package marketplace_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"storefront/core/database"
	"storefront/core/server"
	"storefront/feature/catalog"
	"storefront/feature/marketplace"
	"storefront/feature/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const sellerCatalog = "../catalog/testdata/seller_data.toml"

func setupStoreDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	_, err = store.Initialize(db)
	require.NoError(t, err)
	require.NoError(t, db.Create(&store.Seller{GroupName: "red"}).Error)
	require.NoError(t, db.Create(&store.Product{ID: 1, SellerGroup: "red", StockLevel: 9}).Error)
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newService(db *gorm.DB, catalogPath string) *marketplace.Service {
	loader := catalog.NewLoader(catalog.FileSource{})
	return marketplace.NewService(db, loader, catalogPath, "buyer1", zap.NewNop())
}

func setupTestApp(t *testing.T, db *gorm.DB, catalogPath, views string) *fiber.App {
	app := fiber.New(fiber.Config{Views: marketplace.NewViews()})
	marketplace.NewHandler(newService(db, catalogPath), views).RegisterRoutes(app)
	return app
}

func body(t *testing.T, app *fiber.App, path string) (int, string) {
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), 2000)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestService_BuyerView(t *testing.T) {
	db := setupStoreDB(t)
	require.NoError(t, db.Create(&store.Buyer{Name: "buyer1", Budget: 25}).Error)

	view, err := newService(db, sellerCatalog).BuyerView(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "buyer1", view.BuyerName)
	assert.Equal(t, 25.0, view.Budget)
	assert.Equal(t, "Red Group", view.Seller)
	require.Len(t, view.Products, 3)
	assert.Equal(t, 9, view.Products[0].StockLevel)
	assert.Equal(t, 3, view.Products[1].StockLevel)
	assert.Equal(t, 1, view.Products[2].StockLevel)
}

func TestService_BuyerView_UnknownBuyer(t *testing.T) {
	view, err := newService(setupStoreDB(t), sellerCatalog).BuyerView(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Budget)
}

func TestService_BuyerView_CatalogErrors(t *testing.T) {
	db := setupStoreDB(t)

	_, err := newService(db, "missing.toml").BuyerView(context.Background())
	assert.True(t, errors.Is(err, catalog.ErrNotFound))

	_, err = newService(db, "../catalog/testdata/malformed.toml").BuyerView(context.Background())
	assert.True(t, errors.Is(err, catalog.ErrParse))
}

func TestService_Listing_StoreFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `products`").WillReturnError(errors.New("gone away"))

	products, err := newService(db, sellerCatalog).Listing(context.Background())
	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestHandleMarketplace(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), sellerCatalog, server.ViewsHTML)

	status, html := body(t, app, "/")
	assert.Equal(t, 200, status)
	assert.Contains(t, html, "<td>red</td>")
	assert.Contains(t, html, "<td>9</td>")
}

func TestHandleBuyer(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), sellerCatalog, server.ViewsHTML)

	status, html := body(t, app, "/buyer")
	assert.Equal(t, 200, status)
	assert.Contains(t, html, "Welcome, buyer1")
	assert.Contains(t, html, "Your balance: 0.00")
	assert.Contains(t, html, "<td>Widget</td>")
	assert.Contains(t, html, "<td>9.99</td>")
}

func TestHandleBuyer_MissingCatalog(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), "missing.toml", server.ViewsHTML)

	status, _ := body(t, app, "/buyer")
	assert.Equal(t, 500, status)
}

func TestHandleBuyer_JSONViews(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), sellerCatalog, server.ViewsJSON)

	status, raw := body(t, app, "/buyer")
	require.Equal(t, 200, status)

	var view marketplace.BuyerView
	require.NoError(t, json.Unmarshal([]byte(raw), &view))
	assert.Equal(t, "buyer1", view.BuyerName)
	assert.Len(t, view.Products, 3)
}

func TestHandleAPI(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), sellerCatalog, server.ViewsHTML)

	status, raw := body(t, app, "/api/products")
	require.Equal(t, 200, status)
	var products []store.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 9, products[0].StockLevel)

	status, raw = body(t, app, "/api/buyer")
	require.Equal(t, 200, status)
	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &view))
	assert.Equal(t, 0.0, view["buyer_balance"])
	items := view["products"].([]any)
	assert.Equal(t, 9.0, items[0].(map[string]any)["stock_level"])
	_, hasID := items[2].(map[string]any)["id"]
	assert.False(t, hasID)
}

func TestHandleAPI_MissingCatalog(t *testing.T) {
	app := setupTestApp(t, setupStoreDB(t), "missing.toml", server.ViewsHTML)

	status, raw := body(t, app, "/api/buyer")
	assert.Equal(t, 500, status)
	assert.Contains(t, raw, "catalog not found")
}

func TestLoader(t *testing.T) {
	loader := catalog.NewLoader(catalog.FileSource{})

	feature := marketplace.NewFeature(setupStoreDB(t), loader, sellerCatalog, "buyer1", server.ViewsHTML, zap.NewNop())
	assert.Equal(t, "marketplace", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))

	disabled := marketplace.NewFeature(nil, loader, sellerCatalog, "buyer1", server.ViewsHTML, zap.NewNop())
	assert.False(t, disabled.IsEnabled())
}
