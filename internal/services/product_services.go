package services

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(r *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

// List is the storefront browse/filter listing
func (s *ProductService) List(ctx context.Context, f model.ProductFilter) ([]model.ProductView, error) {
	if f.PriceMin < 0 || f.PriceMax < 0 || (f.PriceMax > 0 && f.PriceMin > f.PriceMax) {
		return nil, errors.New("invalid price range")
	}
	return s.Repo.List(ctx, f)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) validate(p model.Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.CategoryID == 0 {
		return errors.New("category is required")
	}
	if p.BrandID == 0 {
		return errors.New("brand is required")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, p model.Product) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p model.Product) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

// ---- variants ----

func (s *ProductService) ListDetails(ctx context.Context, productID int64) ([]model.ProductDetail, error) {
	return s.Repo.ListDetails(ctx, productID)
}

func (s *ProductService) validateDetail(d model.ProductDetail) error {
	if d.ColorID == 0 || d.SizeID == 0 || d.WeightID == 0 {
		return errors.New("color, size and weight are required")
	}
	if d.Price <= 0 {
		return errors.New("price must be > 0")
	}
	if d.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func (s *ProductService) CreateDetail(ctx context.Context, d model.ProductDetail) (int64, error) {
	if err := s.validateDetail(d); err != nil {
		return 0, err
	}
	if _, err := s.Repo.GetByID(ctx, d.ProductID); err != nil {
		return 0, err
	}
	return s.Repo.CreateDetail(ctx, d)
}

func (s *ProductService) UpdateDetail(ctx context.Context, d model.ProductDetail) error {
	if err := s.validateDetail(d); err != nil {
		return err
	}
	return s.Repo.UpdateDetail(ctx, d)
}

func (s *ProductService) DeleteDetail(ctx context.Context, id int64) error {
	return s.Repo.DeleteDetail(ctx, id)
}
