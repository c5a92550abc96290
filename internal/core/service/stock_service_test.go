package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type stubStockRepo struct {
	byID   map[string]*domain.Stock
	nextID int
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{byID: make(map[string]*domain.Stock)}
}

func (r *stubStockRepo) Create(_ context.Context, s *domain.Stock) (*domain.Stock, error) {
	for _, existing := range r.byID {
		if existing.ProductID == s.ProductID {
			return nil, domain.ErrStockExists
		}
	}
	r.nextID++
	clone := *s
	clone.ID = fmt.Sprintf("s%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id string) (*domain.Stock, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStockNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStockRepo) FindByProductID(_ context.Context, productID string) (*domain.Stock, error) {
	for _, s := range r.byID {
		if s.ProductID == productID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrStockNotFound
}

func (r *stubStockRepo) FindAll(_ context.Context) ([]*domain.Stock, error) {
	out := make([]*domain.Stock, 0, len(r.byID))
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubStockRepo) FindLow(_ context.Context) ([]*domain.Stock, error) {
	var out []*domain.Stock
	for _, s := range r.byID {
		if s.IsLow() {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubStockRepo) Update(_ context.Context, s *domain.Stock) (*domain.Stock, error) {
	if _, ok := r.byID[s.ID]; !ok {
		return nil, domain.ErrStockNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStockRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrStockNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestStockService_OneRecordPerProduct(t *testing.T) {
	svc := NewStockService(newStubStockRepo(), zerolog.Nop())
	ctx := context.Background()

	in := ports.StockInput{ProductID: "p1", Quantity: 10, MinimumLevel: 5, MaximumLevel: 100}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, in); err != domain.ErrStockExists {
		t.Fatalf("expected ErrStockExists, got %v", err)
	}
}

func TestStockService_LowUsesPerRecordMinimum(t *testing.T) {
	repo := newStubStockRepo()
	svc := NewStockService(repo, zerolog.Nop())
	ctx := context.Background()

	// Same quantity, different thresholds: only the second record is low.
	if _, err := svc.Create(ctx, ports.StockInput{ProductID: "p1", Quantity: 8, MinimumLevel: 5}); err != nil {
		t.Fatalf("create p1: %v", err)
	}
	if _, err := svc.Create(ctx, ports.StockInput{ProductID: "p2", Quantity: 8, MinimumLevel: 20}); err != nil {
		t.Fatalf("create p2: %v", err)
	}

	low, err := svc.GetLow(ctx)
	if err != nil {
		t.Fatalf("get low: %v", err)
	}
	if len(low) != 1 || low[0].ProductID != "p2" {
		t.Fatalf("unexpected low set: %+v", low)
	}
}

func TestStockService_UpdateQuantity(t *testing.T) {
	repo := newStubStockRepo()
	svc := NewStockService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.StockInput{ProductID: "p1", Quantity: 10, MinimumLevel: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, ports.StockInput{ProductID: "p1", Quantity: 3, MinimumLevel: 5})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 3 {
		t.Fatalf("quantity not applied: %+v", updated)
	}
	if !updated.IsLow() {
		t.Fatalf("record with quantity below minimum must report low")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
}

func TestStockService_GetByProduct(t *testing.T) {
	svc := NewStockService(newStubStockRepo(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.StockInput{ProductID: "p9", Quantity: 1, MinimumLevel: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := svc.GetByProductID(ctx, "p9")
	if err != nil {
		t.Fatalf("get by product: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("lookup mismatch")
	}

	if _, err := svc.GetByProductID(ctx, "nope"); err != domain.ErrStockNotFound {
		t.Fatalf("expected ErrStockNotFound, got %v", err)
	}
}
