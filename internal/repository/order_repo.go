package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order row and its lines in one transaction and
// returns the new orderid. The order is immutable from the client's
// side after this point; only status moves.
func (r *OrderRepository) Create(ctx context.Context, o model.NewOrder) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var orderID int64
	query := `
		INSERT INTO orders (userid, status, address, shippingcost, voucherid, total, paymentmethod, orderdate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING orderid
	`
	if err := tx.QueryRow(ctx, query,
		o.UserID, model.OrderStatusPending, o.Address, o.ShippingCost, o.VoucherID, o.Total, o.PaymentMethod, time.Now(),
	).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, line := range o.Lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO orderlines (orderid, productdetailid, productname, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, orderID, line.ProductDetailID, line.ProductName, line.Quantity, line.Price)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	query := `SELECT orderid, userid, status, address, shippingcost, voucherid, total, paymentmethod,
			COALESCE(cancelreason, ''), orderdate, created_at
			FROM orders WHERE orderid=$1`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&o.OrderID, &o.UserID, &o.Status, &o.Address, &o.ShippingCost, &o.VoucherID,
		&o.Total, &o.PaymentMethod, &o.CancelReason, &o.OrderDate, &o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("order not found")
		}
		return nil, err
	}
	return &o, nil
}

// GetByUser returns the user's orders, newest first
func (r *OrderRepository) GetByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT orderid, userid, status, address, shippingcost, voucherid, total, paymentmethod,
			COALESCE(cancelreason, ''), orderdate, created_at
			FROM orders WHERE userid=$1 ORDER BY orderid DESC`
	return r.queryOrders(ctx, query, userID)
}

// ListAll returns every order for the back-office
func (r *OrderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT orderid, userid, status, address, shippingcost, voucherid, total, paymentmethod,
			COALESCE(cancelreason, ''), orderdate, created_at
			FROM orders ORDER BY orderid DESC`
	return r.queryOrders(ctx, query)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.OrderID, &o.UserID, &o.Status, &o.Address, &o.ShippingCost, &o.VoucherID,
			&o.Total, &o.PaymentMethod, &o.CancelReason, &o.OrderDate, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetLines returns the purchased line snapshots for an order
func (r *OrderRepository) GetLines(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	query := `SELECT orderlineid, orderid, productdetailid, productname, quantity, price
			FROM orderlines WHERE orderid=$1 ORDER BY orderlineid`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.OrderLine{}
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.OrderLineID, &l.OrderID, &l.ProductDetailID, &l.ProductName, &l.Quantity, &l.Price); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateStatus sets the numeric status code directly (admin operation)
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status int) error {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET status=$1 WHERE orderid=$2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// Cancel sets the cancelled status with a reason, only while the order
// has not shipped yet.
func (r *OrderRepository) Cancel(ctx context.Context, orderID int64, reason string) error {
	query := `UPDATE orders SET status=$1, cancelreason=$2
			WHERE orderid=$3 AND status IN ($4, $5)`
	tag, err := r.DB.Exec(ctx, query,
		model.OrderStatusCancelled, reason, orderID,
		model.OrderStatusPending, model.OrderStatusConfirmed,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order cannot be cancelled")
	}
	return nil
}

// MarkPaidTx flips a gateway order from payment-due to confirmed inside
// the webhook transaction.
func (r *OrderRepository) MarkPaidTx(ctx context.Context, tx pgx.Tx, orderID int64) error {
	_, err := tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE orderid=$2`, model.OrderStatusConfirmed, orderID)
	return err
}

func (r *OrderRepository) MarkFailed(ctx context.Context, orderID int64) error {
	_, err := r.DB.Exec(ctx, `UPDATE orders SET status=$1 WHERE orderid=$2`, model.OrderStatusCancelled, orderID)
	return err
}
