package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/ports"
)

// ResultCache abstracts the short-lived response cache (Redis). A nil cache
// is allowed; the service then always hits the database.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

const analyticsCacheTTL = 30 * time.Second

// AnalyticsService serves the reporting endpoints. Aggregation runs inside
// the database; results are cached briefly because the dashboards poll.
type AnalyticsService struct {
	repo  ports.AnalyticsRepository
	cache ResultCache
	log   zerolog.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, cache ResultCache, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, log: log}
}

func (s *AnalyticsService) Sales(ctx context.Context) (*ports.SalesAnalytics, error) {
	var out ports.SalesAnalytics
	if s.fromCache(ctx, "analytics:sales", &out) {
		return &out, nil
	}

	totals, err := s.repo.SalesTotals(ctx)
	if err != nil {
		return nil, err
	}
	totals.PeriodLabel = "All Time"

	s.toCache(ctx, "analytics:sales", totals)
	return totals, nil
}

func (s *AnalyticsService) Inventory(ctx context.Context) (*ports.InventoryAnalytics, error) {
	var out ports.InventoryAnalytics
	if s.fromCache(ctx, "analytics:inventory", &out) {
		return &out, nil
	}

	totals, err := s.repo.InventoryTotals(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, "analytics:inventory", totals)
	return totals, nil
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*ports.DashboardSummary, error) {
	products, err := s.repo.ProductCount(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.repo.SupplierCount(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.SaleCount(ctx)
	if err != nil {
		return nil, err
	}
	salesAnalytics, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	inventoryAnalytics, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		TotalProducts:      products,
		TotalSuppliers:     suppliers,
		TotalSales:         sales,
		SalesAnalytics:     salesAnalytics,
		InventoryAnalytics: inventoryAnalytics,
	}, nil
}

// fromCache loads key into dst, reporting whether a usable entry was found.
// Cache failures are logged and treated as misses.
func (s *AnalyticsService) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("analytics cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("analytics cache entry unreadable")
		return false
	}
	return true
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, analyticsCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
