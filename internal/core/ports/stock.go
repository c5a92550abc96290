package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// StockInput carries the caller-supplied fields of a stock record.
type StockInput struct {
	ProductID         string
	Quantity          int
	MinimumLevel      int
	MaximumLevel      int
	WarehouseLocation string
}

type StockRepository interface {
	Create(ctx context.Context, s *domain.Stock) (*domain.Stock, error)
	FindByID(ctx context.Context, id string) (*domain.Stock, error)
	FindByProductID(ctx context.Context, productID string) (*domain.Stock, error)
	FindAll(ctx context.Context) ([]*domain.Stock, error)
	// FindLow returns records whose quantity is below their own minimum level.
	FindLow(ctx context.Context) ([]*domain.Stock, error)
	Update(ctx context.Context, s *domain.Stock) (*domain.Stock, error)
	Delete(ctx context.Context, id string) error
}

type StockService interface {
	Create(ctx context.Context, in StockInput) (*domain.Stock, error)
	GetByID(ctx context.Context, id string) (*domain.Stock, error)
	GetByProductID(ctx context.Context, productID string) (*domain.Stock, error)
	GetAll(ctx context.Context) ([]*domain.Stock, error)
	GetLow(ctx context.Context) ([]*domain.Stock, error)
	Update(ctx context.Context, id string, in StockInput) (*domain.Stock, error)
	Delete(ctx context.Context, id string) error
}
