package catalog_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"storefront/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	products, err := catalog.Load("testdata/seller_data.toml")
	require.NoError(t, err)
	require.Len(t, products, 3)

	// File order is preserved
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gadget", products[1].Name)
	assert.Equal(t, "Sample", products[2].Name)

	require.True(t, products[0].HasID())
	assert.Equal(t, int64(1), *products[0].ID)
	assert.Equal(t, 9.99, products[0].Price)
	assert.Equal(t, 5, products[0].Quantity)
	assert.Equal(t, 5, products[0].StockLevel)

	assert.False(t, products[2].HasID())
	assert.Nil(t, products[2].ID)
}

func TestLoad_NoProducts(t *testing.T) {
	products, err := catalog.Load("testdata/no_products.toml")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"Missing File", "testdata/does_not_exist.toml", catalog.ErrNotFound},
		{"Malformed", "testdata/malformed.toml", catalog.ErrParse},
		{"No Seller Table", "testdata/no_seller.toml", catalog.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := catalog.Load(tt.path)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Nil(t, products)
		})
	}
}

func TestLoader_LoadSeller(t *testing.T) {
	loader := catalog.NewLoader(catalog.FileSource{})

	seller, err := loader.LoadSeller(context.Background(), "testdata/seller_data.toml")
	require.NoError(t, err)

	assert.Equal(t, "Red Group", seller.Name)
	assert.Equal(t, "red", seller.Group())
	assert.Equal(t, "Hand made goods", seller.Description)
	assert.Len(t, seller.Products, 3)
}

func TestSeller_Group(t *testing.T) {
	assert.Equal(t, "red", catalog.Seller{Name: "Red Group", GroupName: "red"}.Group())
	assert.Equal(t, "Red Group", catalog.Seller{Name: "Red Group"}.Group())
}

func TestProduct_HasID(t *testing.T) {
	zero, one := int64(0), int64(1)
	assert.False(t, catalog.Product{}.HasID())
	assert.False(t, catalog.Product{ID: &zero}.HasID())
	assert.True(t, catalog.Product{ID: &one}.HasID())
}

func TestParse_WrongType(t *testing.T) {
	doc := `
[seller]
name = "Red"

[[seller.products]]
name = "Widget"
price = "cheap"
`
	seller, err := catalog.Parse("inline", []byte(doc))
	assert.True(t, errors.Is(err, catalog.ErrParse))
	assert.Nil(t, seller)
}

type failingSource struct{ err error }

func (s failingSource) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, s.err
}

type stringSource string

func (s stringSource) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func TestLoader_Sources(t *testing.T) {
	t.Run("Source Error Propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := catalog.NewLoader(failingSource{err: boom}).Load(context.Background(), "x")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Custom Source", func(t *testing.T) {
		src := stringSource("[seller]\nname = \"s\"\n[[seller.products]]\nid = 7\nname = \"p\"\nquantity = 2\n")
		products, err := catalog.NewLoader(src).Load(context.Background(), "x")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(7), *products[0].ID)
		assert.Equal(t, 2, products[0].StockLevel)
	})
}
