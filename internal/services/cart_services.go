package services

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

type CartService struct {
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, ProductRepo: pr}
}

// Add puts qty units of a variant into the cart (or increments)
func (s *CartService) Add(ctx context.Context, userID, productDetailID int64, qty int) error {
	if qty <= 0 {
		return errors.New("quantity must be > 0")
	}

	// variant must exist and be purchasable
	if _, _, err := s.ProductRepo.GetDetailPrice(ctx, productDetailID); err != nil {
		return err
	}

	return s.Repo.AddOrIncrementItem(ctx, userID, productDetailID, qty)
}

// Update sets the exact quantity for a cart line
func (s *CartService) Update(ctx context.Context, userID, productDetailID int64, qty int) error {
	if qty <= 0 {
		return errors.New("quantity must be > 0")
	}
	return s.Repo.SetItemQuantity(ctx, userID, productDetailID, qty)
}

// Remove removes a variant from the cart
func (s *CartService) Remove(ctx context.Context, userID, productDetailID int64) error {
	return s.Repo.RemoveItem(ctx, userID, productDetailID)
}

// Clear removes everything from the cart
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.Repo.Clear(ctx, userID)
}

// Get returns the flattened cart (items + subtotal). Quantities are
// never changed outside the cart endpoints; checkout only reads this.
func (s *CartService) Get(ctx context.Context, userID int64) (*model.CartResponse, error) {
	items, subtotal, err := s.Repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartLineItem{}
	}
	return &model.CartResponse{Items: items, Subtotal: subtotal}, nil
}
