package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// SaleInput carries the caller-supplied fields of a sales order.
type SaleInput struct {
	SaleOrderNumber string
	ProductID       string
	Quantity        int
	UnitPrice       float64
	TotalAmount     float64
	Status          string
	CustomerName    string
	DeliveryAddress string
}

type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error)
	FindAll(ctx context.Context) ([]*domain.Sale, error)
	FindByStatus(ctx context.Context, status string) ([]*domain.Sale, error)
	FindByProductID(ctx context.Context, productID string) ([]*domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type SaleService interface {
	Create(ctx context.Context, in SaleInput) (*domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error)
	GetAll(ctx context.Context) ([]*domain.Sale, error)
	GetByStatus(ctx context.Context, status string) ([]*domain.Sale, error)
	GetByProduct(ctx context.Context, productID string) ([]*domain.Sale, error)
	Update(ctx context.Context, id string, in SaleInput) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}
