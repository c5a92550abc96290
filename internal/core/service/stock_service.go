package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type StockService struct {
	repo ports.StockRepository
	log  zerolog.Logger
}

func NewStockService(repo ports.StockRepository, log zerolog.Logger) *StockService {
	return &StockService{repo: repo, log: log}
}

func (s *StockService) Create(ctx context.Context, in ports.StockInput) (*domain.Stock, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Stock{
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		MinimumLevel:      in.MinimumLevel,
		MaximumLevel:      in.MaximumLevel,
		WarehouseLocation: in.WarehouseLocation,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", created.ProductID).Int("quantity", created.Quantity).Msg("stock created")
	return created, nil
}

func (s *StockService) GetByID(ctx context.Context, id string) (*domain.Stock, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StockService) GetByProductID(ctx context.Context, productID string) (*domain.Stock, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *StockService) GetAll(ctx context.Context) ([]*domain.Stock, error) {
	return s.repo.FindAll(ctx)
}

// GetLow returns records below their own minimum level rather than applying
// a global threshold.
func (s *StockService) GetLow(ctx context.Context) ([]*domain.Stock, error) {
	return s.repo.FindLow(ctx)
}

func (s *StockService) Update(ctx context.Context, id string, in ports.StockInput) (*domain.Stock, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ProductID = in.ProductID
	existing.Quantity = in.Quantity
	existing.MinimumLevel = in.MinimumLevel
	existing.MaximumLevel = in.MaximumLevel
	existing.WarehouseLocation = in.WarehouseLocation
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *StockService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("stock_id", id).Msg("stock deleted")
	return nil
}
