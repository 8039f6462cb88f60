package repository

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository covers the small lookup tables behind the admin
// back-office screens: categories, brands, sizes, colors, weights and
// inventory statuses. They share one repository because every one of
// them is an id + name row.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) list(ctx context.Context, query string, scan func(rows pgx.Rows) error) error {
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// ---- categories ----

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	list := []model.Category{}
	err := r.list(ctx, `SELECT categoryid, categoryname FROM categories ORDER BY categoryid`, func(rows pgx.Rows) error {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName); err != nil {
			return err
		}
		list = append(list, c)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO categories (categoryname) VALUES ($1) RETURNING categoryid`, name).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, id int64, name string) error {
	return r.update(ctx, `UPDATE categories SET categoryname=$1 WHERE categoryid=$2`, name, id)
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM categories WHERE categoryid=$1`, id)
}

// ---- brands ----

func (r *CatalogRepository) ListBrands(ctx context.Context) ([]model.Brand, error) {
	list := []model.Brand{}
	err := r.list(ctx, `SELECT brandid, brandname FROM brands ORDER BY brandid`, func(rows pgx.Rows) error {
		var b model.Brand
		if err := rows.Scan(&b.BrandID, &b.BrandName); err != nil {
			return err
		}
		list = append(list, b)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateBrand(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO brands (brandname) VALUES ($1) RETURNING brandid`, name).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateBrand(ctx context.Context, id int64, name string) error {
	return r.update(ctx, `UPDATE brands SET brandname=$1 WHERE brandid=$2`, name, id)
}

func (r *CatalogRepository) DeleteBrand(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM brands WHERE brandid=$1`, id)
}

// ---- sizes ----

func (r *CatalogRepository) ListSizes(ctx context.Context) ([]model.Size, error) {
	list := []model.Size{}
	err := r.list(ctx, `SELECT sizeid, sizename FROM sizes ORDER BY sizeid`, func(rows pgx.Rows) error {
		var s model.Size
		if err := rows.Scan(&s.SizeID, &s.SizeName); err != nil {
			return err
		}
		list = append(list, s)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateSize(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO sizes (sizename) VALUES ($1) RETURNING sizeid`, name).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateSize(ctx context.Context, id int64, name string) error {
	return r.update(ctx, `UPDATE sizes SET sizename=$1 WHERE sizeid=$2`, name, id)
}

func (r *CatalogRepository) DeleteSize(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM sizes WHERE sizeid=$1`, id)
}

// ---- colors ----

func (r *CatalogRepository) ListColors(ctx context.Context) ([]model.Color, error) {
	list := []model.Color{}
	err := r.list(ctx, `SELECT colorid, colorname FROM colors ORDER BY colorid`, func(rows pgx.Rows) error {
		var c model.Color
		if err := rows.Scan(&c.ColorID, &c.ColorName); err != nil {
			return err
		}
		list = append(list, c)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateColor(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO colors (colorname) VALUES ($1) RETURNING colorid`, name).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateColor(ctx context.Context, id int64, name string) error {
	return r.update(ctx, `UPDATE colors SET colorname=$1 WHERE colorid=$2`, name, id)
}

func (r *CatalogRepository) DeleteColor(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM colors WHERE colorid=$1`, id)
}

// ---- weights ----

func (r *CatalogRepository) ListWeights(ctx context.Context) ([]model.Weight, error) {
	list := []model.Weight{}
	err := r.list(ctx, `SELECT weightid, grams FROM weights ORDER BY grams`, func(rows pgx.Rows) error {
		var w model.Weight
		if err := rows.Scan(&w.WeightID, &w.Grams); err != nil {
			return err
		}
		list = append(list, w)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateWeight(ctx context.Context, grams int) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO weights (grams) VALUES ($1) RETURNING weightid`, grams).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateWeight(ctx context.Context, id int64, grams int) error {
	return r.update(ctx, `UPDATE weights SET grams=$1 WHERE weightid=$2`, grams, id)
}

func (r *CatalogRepository) DeleteWeight(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM weights WHERE weightid=$1`, id)
}

// ---- inventory statuses ----

func (r *CatalogRepository) ListInventoryStatuses(ctx context.Context) ([]model.InventoryStatus, error) {
	list := []model.InventoryStatus{}
	err := r.list(ctx, `SELECT statusid, statusname FROM inventorystatuses ORDER BY statusid`, func(rows pgx.Rows) error {
		var s model.InventoryStatus
		if err := rows.Scan(&s.StatusID, &s.StatusName); err != nil {
			return err
		}
		list = append(list, s)
		return nil
	})
	return list, err
}

func (r *CatalogRepository) CreateInventoryStatus(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO inventorystatuses (statusname) VALUES ($1) RETURNING statusid`, name).Scan(&id)
	return id, err
}

func (r *CatalogRepository) UpdateInventoryStatus(ctx context.Context, id int64, name string) error {
	return r.update(ctx, `UPDATE inventorystatuses SET statusname=$1 WHERE statusid=$2`, name, id)
}

func (r *CatalogRepository) DeleteInventoryStatus(ctx context.Context, id int64) error {
	return r.update(ctx, `DELETE FROM inventorystatuses WHERE statusid=$1`, id)
}

func (r *CatalogRepository) update(ctx context.Context, query string, args ...any) error {
	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("not found")
	}
	return nil
}
