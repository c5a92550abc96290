package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, existing := range r.byID {
		if existing.ProductCode == p.ProductCode {
			return nil, domain.ErrProductExists
		}
	}
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindByCode(_ context.Context, code string) (*domain.Product, error) {
	for _, p := range r.byID {
		if p.ProductCode == code {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, category string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		if p.Category == category {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindActive(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		if p.Active {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func sampleProduct() ports.ProductInput {
	return ports.ProductInput{
		ProductCode: "WID-001",
		ProductName: "Widget",
		Category:    "widgets",
		UnitPrice:   9.99,
		Active:      true,
	}
}

func TestProductService_CreateAndGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleProduct())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}

	byCode, err := svc.GetByCode(ctx, "WID-001")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if byCode.ID != created.ID {
		t.Fatalf("lookup mismatch")
	}
}

func TestProductService_DuplicateCode(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, sampleProduct()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, sampleProduct()); err != domain.ErrProductExists {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	created, _ := svc.Create(ctx, sampleProduct())

	in := sampleProduct()
	in.ProductName = "Widget v2"
	in.UnitPrice = 12.5
	in.Active = false

	updated, err := svc.Update(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ProductName != "Widget v2" || updated.UnitPrice != 12.5 || updated.Active {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.ProductCode != created.ProductCode {
		t.Fatalf("product code must be immutable")
	}
}

func TestProductService_UpdateMissing(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	if _, err := svc.Update(context.Background(), "nope", sampleProduct()); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	created, _ := svc.Create(ctx, sampleProduct())
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound for second delete, got %v", err)
	}
}
