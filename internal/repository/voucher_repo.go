package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrVoucherExhausted = errors.New("voucher has no redemptions left")

type VoucherRepository struct {
	DB *pgxpool.Pool
}

func NewVoucherRepository(db *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{DB: db}
}

func (r *VoucherRepository) List(ctx context.Context) ([]model.Voucher, error) {
	query := `SELECT voucherid, name, percents, condition, quantity, startdate, enddate, created_at
			FROM vouchers WHERE deleted_at IS NULL ORDER BY voucherid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Voucher{}
	for rows.Next() {
		var v model.Voucher
		if err := rows.Scan(&v.VoucherID, &v.Name, &v.Percents, &v.Condition, &v.Quantity, &v.StartDate, &v.EndDate, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *VoucherRepository) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	var v model.Voucher
	query := `SELECT voucherid, name, percents, condition, quantity, startdate, enddate, created_at
			FROM vouchers WHERE voucherid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&v.VoucherID, &v.Name, &v.Percents, &v.Condition, &v.Quantity, &v.StartDate, &v.EndDate, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("voucher not found")
		}
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) Create(ctx context.Context, v model.Voucher) (int64, error) {
	var id int64
	query := `INSERT INTO vouchers (name, percents, condition, quantity, startdate, enddate, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING voucherid`
	if err := r.DB.QueryRow(ctx, query, v.Name, v.Percents, v.Condition, v.Quantity, v.StartDate, v.EndDate, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *VoucherRepository) Update(ctx context.Context, v model.Voucher) error {
	query := `UPDATE vouchers SET name=$1, percents=$2, condition=$3, quantity=$4, startdate=$5, enddate=$6
			WHERE voucherid=$7 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, v.Name, v.Percents, v.Condition, v.Quantity, v.StartDate, v.EndDate, v.VoucherID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("voucher not found")
	}
	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE vouchers SET deleted_at=$1 WHERE voucherid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("voucher not found")
	}
	return nil
}

// Decrement consumes one redemption. The quantity guard lives in the
// WHERE clause; there is no reservation between eligibility display and
// consumption, so two checkouts can both pass display and race here.
func (r *VoucherRepository) Decrement(ctx context.Context, id int64) error {
	query := `UPDATE vouchers SET quantity = quantity - 1
			WHERE voucherid=$1 AND quantity > 0 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVoucherExhausted
	}
	return nil
}
