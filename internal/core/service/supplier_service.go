package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type SupplierService struct {
	repo ports.SupplierRepository
	log  zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, log zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, log: log}
}

func (s *SupplierService) Create(ctx context.Context, in ports.SupplierInput) (*domain.Supplier, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Supplier{
		SupplierCode:  in.SupplierCode,
		SupplierName:  in.SupplierName,
		Description:   in.Description,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Active:        in.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("supplier_code", created.SupplierCode).Msg("supplier created")
	return created, nil
}

func (s *SupplierService) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SupplierService) GetByCode(ctx context.Context, code string) (*domain.Supplier, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *SupplierService) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *SupplierService) GetAll(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.FindAll(ctx)
}

func (s *SupplierService) GetActive(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.FindActive(ctx)
}

func (s *SupplierService) Update(ctx context.Context, id string, in ports.SupplierInput) (*domain.Supplier, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.SupplierName = in.SupplierName
	existing.Description = in.Description
	existing.ContactPerson = in.ContactPerson
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Address = in.Address
	existing.Active = in.Active
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("supplier_id", id).Msg("supplier deleted")
	return nil
}
