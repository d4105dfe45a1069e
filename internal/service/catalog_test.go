package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) GetProducts(_ context.Context, category string) ([]models.Product, error) {
	items := make([]models.Product, 0)
	for _, p := range f.products {
		if category == "" || p.Category == category {
			items = append(items, p)
		}
	}
	return items, nil
}

func (f *fakeProductRepo) GetProduct(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) GetFeaturedProducts(_ context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	for _, p := range f.products {
		if p.Featured {
			items = append(items, p)
		}
	}
	return items, nil
}

func newTestCatalog() (*CatalogService, []models.Product) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Laptop Pro", Category: "Electronics", Price: 1299.99, Featured: true},
		{ID: primitive.NewObjectID(), Name: "Wireless Mouse", Category: "Accessories", Price: 29.99},
		{ID: primitive.NewObjectID(), Name: "USB-C Hub", Category: "Accessories", Price: 49.99, Featured: true},
	}
	return &CatalogService{Repo: &fakeProductRepo{products: products}}, products
}

func TestCatalogService_GetProducts_All(t *testing.T) {
	t.Parallel()

	svc, products := newTestCatalog()

	items, err := svc.GetProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, len(products))
}

func TestCatalogService_GetProducts_CategoryFilter(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCatalog()

	items, err := svc.GetProducts(context.Background(), "Accessories")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, p := range items {
		assert.Equal(t, "Accessories", p.Category)
	}
}

func TestCatalogService_GetProducts_UnknownCategoryIsEmptyNotError(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCatalog()

	items, err := svc.GetProducts(context.Background(), "Groceries")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCatalogService_GetFeaturedProducts_SubsetOfAll(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCatalog()

	all, err := svc.GetProducts(context.Background(), "")
	require.NoError(t, err)

	featured, err := svc.GetFeaturedProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, featured)

	byID := make(map[primitive.ObjectID]models.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	for _, p := range featured {
		assert.True(t, p.Featured)
		assert.Contains(t, byID, p.ID)
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Parallel()

	svc, products := newTestCatalog()

	got, err := svc.GetProduct(context.Background(), products[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, products[0].Name, got.Name)
}

func TestCatalogService_GetProduct_InvalidID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCatalog()

	res, err := svc.GetProduct(context.Background(), "not-an-object-id")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCatalog()

	res, err := svc.GetProduct(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}
