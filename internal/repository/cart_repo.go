package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// AddOrIncrementItem inserts or increments a cart row for a variant
func (r *CartRepository) AddOrIncrementItem(ctx context.Context, userID, productDetailID int64, qty int) error {
	query := `
		INSERT INTO cartitems (userid, productdetailid, quantity, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (userid, productdetailid)
		DO UPDATE SET quantity = cartitems.quantity + EXCLUDED.quantity
	`
	_, err := r.DB.Exec(ctx, query, userID, productDetailID, qty, time.Now())
	return err
}

// SetItemQuantity sets exact quantity for a cart row
func (r *CartRepository) SetItemQuantity(ctx context.Context, userID, productDetailID int64, qty int) error {
	query := `UPDATE cartitems SET quantity=$1 WHERE userid=$2 AND productdetailid=$3`
	tag, err := r.DB.Exec(ctx, query, qty, userID, productDetailID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

// RemoveItem removes one variant from the cart
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productDetailID int64) error {
	query := `DELETE FROM cartitems WHERE userid=$1 AND productdetailid=$2`
	_, err := r.DB.Exec(ctx, query, userID, productDetailID)
	return err
}

// Clear removes every cart row for the user
func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM cartitems WHERE userid=$1`
	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

// GetItems returns the flattened cart: variant attributes joined in,
// line totals derived, plus the subtotal.
func (r *CartRepository) GetItems(ctx context.Context, userID int64) ([]model.CartLineItem, int64, error) {
	query := `
		SELECT ci.cartitemid, ci.productdetailid, p.name, pd.price, ci.quantity,
		       co.colorname, sz.sizename, w.grams, pd.image
		FROM cartitems ci
		JOIN productdetails pd ON pd.productdetailid = ci.productdetailid
		JOIN products p ON p.productid = pd.productid
		JOIN colors co ON co.colorid = pd.colorid
		JOIN sizes sz ON sz.sizeid = pd.sizeid
		JOIN weights w ON w.weightid = pd.weightid
		WHERE ci.userid=$1 AND p.deleted_at IS NULL
		ORDER BY ci.cartitemid
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.CartLineItem
	var subtotal int64
	for rows.Next() {
		var it model.CartLineItem
		if err := rows.Scan(&it.CartItemID, &it.ProductDetailID, &it.ProductName, &it.UnitPrice, &it.Quantity, &it.Color, &it.Size, &it.WeightGrams, &it.Image); err != nil {
			return nil, 0, err
		}
		it.LineTotal = it.UnitPrice * int64(it.Quantity)
		items = append(items, it)
		subtotal += it.LineTotal
	}
	return items, subtotal, rows.Err()
}
