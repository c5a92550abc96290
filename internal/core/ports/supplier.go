package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// SupplierInput carries the caller-supplied fields of a supplier.
type SupplierInput struct {
	SupplierCode  string
	SupplierName  string
	Description   string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Active        bool
}

type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	FindByCode(ctx context.Context, code string) (*domain.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	FindAll(ctx context.Context) ([]*domain.Supplier, error)
	FindActive(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type SupplierService interface {
	Create(ctx context.Context, in SupplierInput) (*domain.Supplier, error)
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	GetByCode(ctx context.Context, code string) (*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	GetAll(ctx context.Context) ([]*domain.Supplier, error)
	GetActive(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, id string, in SupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}
