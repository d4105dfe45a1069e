package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

type ProductRepo interface {
	GetProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
}

type CatalogService struct {
	Repo ProductRepo
}

// GetProducts returns every product, or only those in category when it is
// non-empty. Unknown categories yield an empty slice, not an error.
func (s *CatalogService) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("id is not a valid object id: %w", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetFeaturedProducts(ctx)
}
