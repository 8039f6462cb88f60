package services

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

// CatalogService backs the admin CRUD screens for the lookup tables
// (categories, brands, sizes, colors, weights, inventory statuses).
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(r *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: r}
}

func requireName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (int64, error) {
	if err := requireName(name); err != nil {
		return 0, err
	}
	return s.Repo.CreateCategory(ctx, name)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	return s.Repo.UpdateCategory(ctx, id, name)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.Repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.Repo.ListBrands(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) (int64, error) {
	if err := requireName(name); err != nil {
		return 0, err
	}
	return s.Repo.CreateBrand(ctx, name)
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id int64, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	return s.Repo.UpdateBrand(ctx, id, name)
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id int64) error {
	return s.Repo.DeleteBrand(ctx, id)
}

func (s *CatalogService) ListSizes(ctx context.Context) ([]model.Size, error) {
	return s.Repo.ListSizes(ctx)
}

func (s *CatalogService) CreateSize(ctx context.Context, name string) (int64, error) {
	if err := requireName(name); err != nil {
		return 0, err
	}
	return s.Repo.CreateSize(ctx, name)
}

func (s *CatalogService) UpdateSize(ctx context.Context, id int64, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	return s.Repo.UpdateSize(ctx, id, name)
}

func (s *CatalogService) DeleteSize(ctx context.Context, id int64) error {
	return s.Repo.DeleteSize(ctx, id)
}

func (s *CatalogService) ListColors(ctx context.Context) ([]model.Color, error) {
	return s.Repo.ListColors(ctx)
}

func (s *CatalogService) CreateColor(ctx context.Context, name string) (int64, error) {
	if err := requireName(name); err != nil {
		return 0, err
	}
	return s.Repo.CreateColor(ctx, name)
}

func (s *CatalogService) UpdateColor(ctx context.Context, id int64, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	return s.Repo.UpdateColor(ctx, id, name)
}

func (s *CatalogService) DeleteColor(ctx context.Context, id int64) error {
	return s.Repo.DeleteColor(ctx, id)
}

func (s *CatalogService) ListWeights(ctx context.Context) ([]model.Weight, error) {
	return s.Repo.ListWeights(ctx)
}

func (s *CatalogService) CreateWeight(ctx context.Context, grams int) (int64, error) {
	if grams <= 0 {
		return 0, errors.New("grams must be > 0")
	}
	return s.Repo.CreateWeight(ctx, grams)
}

func (s *CatalogService) UpdateWeight(ctx context.Context, id int64, grams int) error {
	if grams <= 0 {
		return errors.New("grams must be > 0")
	}
	return s.Repo.UpdateWeight(ctx, id, grams)
}

func (s *CatalogService) DeleteWeight(ctx context.Context, id int64) error {
	return s.Repo.DeleteWeight(ctx, id)
}

func (s *CatalogService) ListInventoryStatuses(ctx context.Context) ([]model.InventoryStatus, error) {
	return s.Repo.ListInventoryStatuses(ctx)
}

func (s *CatalogService) CreateInventoryStatus(ctx context.Context, name string) (int64, error) {
	if err := requireName(name); err != nil {
		return 0, err
	}
	return s.Repo.CreateInventoryStatus(ctx, name)
}

func (s *CatalogService) UpdateInventoryStatus(ctx context.Context, id int64, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	return s.Repo.UpdateInventoryStatus(ctx, id, name)
}

func (s *CatalogService) DeleteInventoryStatus(ctx context.Context, id int64) error {
	return s.Repo.DeleteInventoryStatus(ctx, id)
}
