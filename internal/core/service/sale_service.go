package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type SaleService struct {
	repo ports.SaleRepository
	log  zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, log zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, log: log}
}

func (s *SaleService) Create(ctx context.Context, in ports.SaleInput) (*domain.Sale, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Sale{
		SaleOrderNumber: in.SaleOrderNumber,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		TotalAmount:     in.TotalAmount,
		Status:          in.Status,
		CustomerName:    in.CustomerName,
		DeliveryAddress: in.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("order_number", created.SaleOrderNumber).Msg("sale created")
	return created, nil
}

func (s *SaleService) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SaleService) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error) {
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

func (s *SaleService) GetAll(ctx context.Context) ([]*domain.Sale, error) {
	return s.repo.FindAll(ctx)
}

func (s *SaleService) GetByStatus(ctx context.Context, status string) ([]*domain.Sale, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *SaleService) GetByProduct(ctx context.Context, productID string) ([]*domain.Sale, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *SaleService) Update(ctx context.Context, id string, in ports.SaleInput) (*domain.Sale, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ProductID = in.ProductID
	existing.Quantity = in.Quantity
	existing.UnitPrice = in.UnitPrice
	existing.TotalAmount = in.TotalAmount
	existing.Status = in.Status
	existing.CustomerName = in.CustomerName
	existing.DeliveryAddress = in.DeliveryAddress
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("sale_id", id).Msg("sale deleted")
	return nil
}
