package service

import (
	"context"
	"fmt"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

type CartRepo interface {
	AddItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
}

type CartService struct {
	Repo CartRepo
}

// AddToCart merges by (user_id, product_id): adding to an existing pair
// increments its quantity rather than creating a second line.
func (s *CartService) AddToCart(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if item.UserID == "" {
		return nil, fmt.Errorf("user_id is required: %w", ErrValidation)
	}
	if item.ProductID == "" {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if item.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	return s.Repo.AddItem(ctx, item)
}

// GetCart returns the user's items; a user with no cart gets an empty slice.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required: %w", ErrValidation)
	}

	return s.Repo.GetCart(ctx, userID)
}
