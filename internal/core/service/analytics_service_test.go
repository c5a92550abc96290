package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/ports"
)

type stubAnalyticsRepo struct {
	salesCalls     int
	inventoryCalls int
	failSales      bool
}

func (r *stubAnalyticsRepo) SalesTotals(_ context.Context) (*ports.SalesAnalytics, error) {
	r.salesCalls++
	if r.failSales {
		return nil, errors.New("aggregation failed")
	}
	return &ports.SalesAnalytics{TotalOrders: 5, TotalQuantitySold: 40, TotalRevenue: 1234.5}, nil
}

func (r *stubAnalyticsRepo) InventoryTotals(_ context.Context) (*ports.InventoryAnalytics, error) {
	r.inventoryCalls++
	return &ports.InventoryAnalytics{TotalProducts: 3, TotalStockQuantity: 90, LowStockCount: 1, TotalInventoryValue: 900}, nil
}

func (r *stubAnalyticsRepo) ProductCount(_ context.Context) (int64, error)  { return 3, nil }
func (r *stubAnalyticsRepo) SupplierCount(_ context.Context) (int64, error) { return 2, nil }
func (r *stubAnalyticsRepo) SaleCount(_ context.Context) (int64, error)     { return 5, nil }

type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := c.entries[key]
	return raw, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func TestAnalyticsService_Sales(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	svc := NewAnalyticsService(repo, nil, zerolog.Nop())

	out, err := svc.Sales(context.Background())
	if err != nil {
		t.Fatalf("Sales returned error: %v", err)
	}
	if out.TotalOrders != 5 || out.TotalRevenue != 1234.5 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	if out.PeriodLabel != "All Time" {
		t.Fatalf("expected period label, got %q", out.PeriodLabel)
	}
}

func TestAnalyticsService_SalesCached(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	svc := NewAnalyticsService(repo, newMemCache(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Sales(ctx); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.Sales(ctx); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if repo.salesCalls != 1 {
		t.Fatalf("expected a single aggregation, got %d", repo.salesCalls)
	}
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	svc := NewAnalyticsService(repo, nil, zerolog.Nop())

	out, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if out.TotalProducts != 3 || out.TotalSuppliers != 2 || out.TotalSales != 5 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.SalesAnalytics == nil || out.InventoryAnalytics == nil {
		t.Fatalf("expected embedded aggregates")
	}
}

func TestAnalyticsService_RepositoryErrorPropagates(t *testing.T) {
	repo := &stubAnalyticsRepo{failSales: true}
	svc := NewAnalyticsService(repo, nil, zerolog.Nop())

	if _, err := svc.Sales(context.Background()); err == nil {
		t.Fatalf("expected aggregation error to propagate")
	}
}
