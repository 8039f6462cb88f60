package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

// List returns the storefront listing, filtered and paginated.
// Price bounds apply to the cheapest variant of each product.
func (r *ProductRepository) List(ctx context.Context, f model.ProductFilter) ([]model.ProductView, error) {
	query := `
		SELECT p.productid, p.name, c.categoryname, b.brandname,
		       COALESCE(MIN(pd.price), 0) AS minprice, p.image
		FROM products p
		JOIN categories c ON c.categoryid = p.categoryid
		JOIN brands b ON b.brandid = p.brandid
		LEFT JOIN productdetails pd ON pd.productid = p.productid
		WHERE p.deleted_at IS NULL
		  AND ($1 = 0 OR p.categoryid = $1)
		  AND ($2 = 0 OR p.brandid = $2)
		  AND ($3 = '' OR p.name ILIKE '%' || $3 || '%')
		GROUP BY p.productid, p.name, c.categoryname, b.brandname, p.image
		HAVING ($4 = 0 OR COALESCE(MIN(pd.price), 0) >= $4)
		   AND ($5 = 0 OR COALESCE(MIN(pd.price), 0) <= $5)
		ORDER BY p.productid
		LIMIT $6 OFFSET $7
	`

	page := f.Page
	if page < 1 {
		page = 1
	}
	size := f.PageSize
	if size < 1 || size > 100 {
		size = 20
	}

	rows, err := r.DB.Query(ctx, query,
		f.CategoryID, f.BrandID, f.Search, f.PriceMin, f.PriceMax,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.ProductView{}
	for rows.Next() {
		var v model.ProductView
		if err := rows.Scan(&v.ProductID, &v.Name, &v.CategoryName, &v.BrandName, &v.MinPrice, &v.Image); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT productid, name, description, categoryid, brandid, image, created_at, deleted_at
			FROM products WHERE productid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&p.ProductID, &p.Name, &p.Description, &p.CategoryID, &p.BrandID, &p.Image, &p.CreatedAt, &p.DeletedAt); err != nil {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) (int64, error) {
	var id int64
	query := `INSERT INTO products (name, description, categoryid, brandid, image, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING productid`
	if err := r.DB.QueryRow(ctx, query, p.Name, p.Description, p.CategoryID, p.BrandID, p.Image, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) error {
	query := `UPDATE products SET name=$1, description=$2, categoryid=$3, brandid=$4, image=$5
			WHERE productid=$6 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Description, p.CategoryID, p.BrandID, p.Image, p.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// Delete soft-deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE products SET deleted_at=$1 WHERE productid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// ---- product details (variants) ----

func (r *ProductRepository) ListDetails(ctx context.Context, productID int64) ([]model.ProductDetail, error) {
	query := `SELECT productdetailid, productid, colorid, sizeid, weightid, statusid, price, stock, image
			FROM productdetails WHERE productid=$1 ORDER BY productdetailid`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.ProductDetail{}
	for rows.Next() {
		var d model.ProductDetail
		if err := rows.Scan(&d.ProductDetailID, &d.ProductID, &d.ColorID, &d.SizeID, &d.WeightID, &d.StatusID, &d.Price, &d.Stock, &d.Image); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *ProductRepository) CreateDetail(ctx context.Context, d model.ProductDetail) (int64, error) {
	var id int64
	query := `INSERT INTO productdetails (productid, colorid, sizeid, weightid, statusid, price, stock, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING productdetailid`
	if err := r.DB.QueryRow(ctx, query, d.ProductID, d.ColorID, d.SizeID, d.WeightID, d.StatusID, d.Price, d.Stock, d.Image).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) UpdateDetail(ctx context.Context, d model.ProductDetail) error {
	query := `UPDATE productdetails SET colorid=$1, sizeid=$2, weightid=$3, statusid=$4, price=$5, stock=$6, image=$7
			WHERE productdetailid=$8`
	tag, err := r.DB.Exec(ctx, query, d.ColorID, d.SizeID, d.WeightID, d.StatusID, d.Price, d.Stock, d.Image, d.ProductDetailID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product detail not found")
	}
	return nil
}

func (r *ProductRepository) DeleteDetail(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM productdetails WHERE productdetailid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product detail not found")
	}
	return nil
}

// GetDetailPrice returns current price and product name for a variant
func (r *ProductRepository) GetDetailPrice(ctx context.Context, productDetailID int64) (name string, price int64, err error) {
	query := `
		SELECT p.name, pd.price
		FROM productdetails pd
		JOIN products p ON p.productid = pd.productid
		WHERE pd.productdetailid=$1 AND p.deleted_at IS NULL
	`
	if err := r.DB.QueryRow(ctx, query, productDetailID).Scan(&name, &price); err != nil {
		return "", 0, errors.New("product detail not found")
	}
	return name, price, nil
}
