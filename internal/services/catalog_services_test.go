package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/shopapi"
)

type fakeCatalogBackend struct {
	products []shopapi.ProductRecord
	err      error
}

func (f *fakeCatalogBackend) Products(ctx context.Context) ([]shopapi.ProductRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalogBackend) Product(ctx context.Context, productID int64) (shopapi.ProductRecord, error) {
	if f.err != nil {
		return shopapi.ProductRecord{}, f.err
	}
	for _, p := range f.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return shopapi.ProductRecord{}, &shopapi.HTTPError{Status: 404, Message: "Product not found"}
}

func (f *fakeCatalogBackend) Search(ctx context.Context, query string) ([]shopapi.ProductRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func testCatalog() *fakeCatalogBackend {
	return &fakeCatalogBackend{products: []shopapi.ProductRecord{
		{ProductID: 1, ItemName: "Premium Dog Food", Price: 320000, Category: "dog", Description: "dry food"},
		{ProductID: 2, ItemName: "Cat Toy Feather", Price: 85000, Category: "cat", Description: "toy"},
		{ProductID: 3, ItemName: "Dog Dental Treat", Price: 120000, Category: "dog", Description: "treat"},
	}}
}

func TestListMapsAndFilters(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())
	ctx := context.Background()

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, int64(320000), all[0].Price)
	assert.Equal(t, "https://placehold.co/600x400.png?text=Premium+Dog+Food", all[0].Image)

	dogs, err := svc.List(ctx, "dog", "")
	require.NoError(t, err)
	assert.Len(t, dogs, 2)

	treats, err := svc.List(ctx, "dog", "dental")
	require.NoError(t, err)
	require.Len(t, treats, 1)
	assert.Equal(t, "Dog Dental Treat", treats[0].Name)

	none, err := svc.List(ctx, "fish", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetNotFound(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())

	_, err := svc.Get(context.Background(), "99")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetEnrichesWithComments(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())

	_, err := svc.AddComment("1", "Reza Ahmadi", "My dog loves this food", 5)
	require.NoError(t, err)
	_, err = svc.AddComment("1", "Sara Mohammadi", "Good packaging, arrived on time", 4)
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "Sara Mohammadi", p.Comments[0].User, "comments are newest first")
	assert.InDelta(t, 4.5, p.Rating, 0.001)
}

func TestAddCommentValidation(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())

	tests := []struct {
		name   string
		user   string
		text   string
		rating int
	}{
		{"missing user", "", "nice product", 4},
		{"missing text", "Reza", "", 4},
		{"rating too low", "Reza", "nice product", 0},
		{"rating too high", "Reza", "nice product", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddComment("1", tt.user, tt.text, tt.rating)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	assert.Empty(t, svc.Comments("1"), "rejected comments are not stored")
}

func TestTopProducts(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())

	top, err := svc.TopProducts(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestListBackendFailure(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogBackend{err: &shopapi.NetworkError{Err: context.DeadlineExceeded}}, zap.NewNop())

	_, err := svc.List(context.Background(), "", "")

	var netErr *shopapi.NetworkError
	assert.ErrorAs(t, err, &netErr)
}
