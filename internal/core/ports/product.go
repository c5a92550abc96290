package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// ProductInput carries the caller-supplied fields of a product. The ID and
// timestamps are owned by the service and storage layers.
type ProductInput struct {
	ProductCode string
	ProductName string
	Description string
	Category    string
	UnitPrice   float64
	Active      bool
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	FindActive(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	GetActive(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
