package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		ProductCode: in.ProductCode,
		ProductName: in.ProductName,
		Description: in.Description,
		Category:    in.Category,
		UnitPrice:   in.UnitPrice,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_code", created.ProductCode).Msg("product created")
	return created, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *ProductService) GetActive(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindActive(ctx)
}

// Update overwrites the mutable fields of an existing product. The product
// code is immutable after creation, matching the unique index on it.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ProductName = in.ProductName
	existing.Description = in.Description
	existing.Category = in.Category
	existing.UnitPrice = in.UnitPrice
	existing.Active = in.Active
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
