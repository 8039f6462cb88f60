package services

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

// GetMine returns the calling user's orders
func (s *OrderService) GetMine(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// GetLines returns the line snapshots, with an ownership check unless
// the caller is an admin.
func (s *OrderService) GetLines(ctx context.Context, orderID, userID int64, isAdmin bool) ([]model.OrderLine, error) {
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, errors.New("forbidden")
	}
	return s.Repo.GetLines(ctx, orderID)
}

// ListAll is the back-office order screen
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.Repo.ListAll(ctx)
}

// UpdateStatus sets the numeric status code (admin)
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status int) error {
	if status < model.OrderStatusPending || status > model.OrderStatusPaymentDue {
		return errors.New("unknown order status code")
	}
	return s.Repo.UpdateStatus(ctx, orderID, status)
}

// Cancel cancels the user's own order with a reason, only while it has
// not shipped.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID int64, reason string) error {
	if reason == "" {
		return errors.New("cancel reason is required")
	}
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return errors.New("forbidden")
	}
	return s.Repo.Cancel(ctx, orderID, reason)
}
