package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	mt "PetStoreAPI/external/midtrans"
	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

// PaymentService settles gateway payments from provider notifications.
// The order row already exists when the user is redirected out, so the
// webhook only moves it between paid and failed.
type PaymentService struct {
	PaymentRepo *repository.PaymentRepository
	OrderRepo   *repository.OrderRepository
}

func NewPaymentService(pr *repository.PaymentRepository, or *repository.OrderRepository) *PaymentService {
	return &PaymentService{PaymentRepo: pr, OrderRepo: or}
}

// HandleGatewayNotification processes one midtrans transaction-status
// callback. The ref we issued at submission time is midtrans's order_id
// and resolves the payment row, which carries our order id.
func (s *PaymentService) HandleGatewayNotification(ctx context.Context, payload map[string]interface{}) error {
	externalRef, _ := payload["order_id"].(string)
	if externalRef == "" {
		return errors.New("missing order_id")
	}

	payment, err := s.PaymentRepo.GetByProviderRef(ctx, externalRef)
	if err != nil {
		return err
	}
	if payment == nil {
		return errors.New("unknown payment reference")
	}

	order, err := s.OrderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}

	// already settled, the provider retries notifications
	if payment.PaymentStatus == "Paid" || order.Status == model.OrderStatusConfirmed {
		return nil
	}

	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)
	if !mt.VerifySignature(externalRef, statusCode, grossAmount, signature, os.Getenv("MIDTRANS_SERVER_KEY")) {
		return errors.New("invalid signature")
	}

	txStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)

	switch txStatus {
	case "settlement":
		return s.settle(ctx, order.OrderID, payload)
	case "capture":
		if fraudStatus == "accept" {
			return s.settle(ctx, order.OrderID, payload)
		}
	case "expire", "cancel", "deny":
		return s.reject(ctx, order, payload)
	}
	return nil
}

// settle marks payment and order paid in one transaction
func (s *PaymentService) settle(ctx context.Context, orderID int64, payload map[string]interface{}) error {
	providerRef, _ := payload["transaction_id"].(string)
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	tx, err := s.PaymentRepo.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.PaymentRepo.MarkPaidTx(ctx, tx, orderID, providerRef, "midtrans", raw); err != nil {
		return err
	}
	if err := s.OrderRepo.MarkPaidTx(ctx, tx, orderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PaymentService) reject(ctx context.Context, order *model.Order, payload map[string]interface{}) error {
	if order.Status == model.OrderStatusConfirmed || order.Status == model.OrderStatusCancelled {
		return nil
	}

	raw, _ := json.Marshal(payload)
	if err := s.OrderRepo.MarkFailed(ctx, order.OrderID); err != nil {
		return err
	}
	return s.PaymentRepo.MarkFailed(ctx, order.OrderID, raw)
}
