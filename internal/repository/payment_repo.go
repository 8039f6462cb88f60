package repository

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `paymentid, orderid, amount, paymentstatus,
		paymentprovider, providerref, providerpayload, createdat, paidat`

// CreatePending records the not-yet-settled gateway payment issued at
// checkout submission. providerRef is the external ref we handed the
// gateway; the webhook finds the row by it.
func (r *PaymentRepository) CreatePending(ctx context.Context, orderID, amount int64, provider, providerRef string, payload []byte) (int64, error) {
	var paymentID int64
	query := `INSERT INTO payments (orderid, amount, paymentstatus, paymentprovider, providerref, providerpayload, createdat)
			VALUES ($1, $2, 'Pending', $3, $4, $5, NOW()) RETURNING paymentid`
	err := r.DB.QueryRow(ctx, query, orderID, amount, provider, providerRef, payload).Scan(&paymentID)
	return paymentID, err
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID int64) (*model.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE orderid=$1`, orderID)
}

// GetByProviderRef resolves the payment row for an external gateway reference
func (r *PaymentRepository) GetByProviderRef(ctx context.Context, providerRef string) (*model.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE providerref=$1`, providerRef)
}

func (r *PaymentRepository) getOne(ctx context.Context, query string, arg any) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&p.PaymentID, &p.OrderID, &p.Amount, &p.PaymentStatus,
		&p.PaymentProvider, &p.ProviderRef, &p.ProviderPayload,
		&p.CreatedAt, &p.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaidTx settles the pending row inside the webhook transaction
func (r *PaymentRepository) MarkPaidTx(ctx context.Context, tx pgx.Tx, orderID int64, providerRef, provider string, payload []byte) error {
	_, err := tx.Exec(ctx, `
		UPDATE payments
		SET paymentstatus='Paid', providerref=$2, paymentprovider=$3, providerpayload=$4, paidat=NOW()
		WHERE orderid=$1 AND paymentstatus='Pending'
	`, orderID, providerRef, provider, payload)
	return err
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, orderID int64, payload []byte) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE payments
		SET paymentstatus='Failed', providerpayload=$2
		WHERE orderid=$1 AND paymentstatus='Pending'
	`, orderID, payload)
	return err
}
