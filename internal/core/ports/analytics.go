package ports

import "context"

// SalesAnalytics aggregates the sales collection server-side.
type SalesAnalytics struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalQuantitySold int64   `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PeriodLabel       string  `json:"periodLabel"`
}

// InventoryAnalytics aggregates the stock and product collections.
type InventoryAnalytics struct {
	TotalProducts       int64   `json:"totalProducts"`
	TotalStockQuantity  int64   `json:"totalStockQuantity"`
	LowStockCount       int64   `json:"lowStockCount"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
}

// DashboardSummary combines the headline counts with both aggregates.
type DashboardSummary struct {
	TotalProducts      int64               `json:"totalProducts"`
	TotalSuppliers     int64               `json:"totalSuppliers"`
	TotalSales         int64               `json:"totalSales"`
	SalesAnalytics     *SalesAnalytics     `json:"salesAnalytics"`
	InventoryAnalytics *InventoryAnalytics `json:"inventoryAnalytics"`
}

// AnalyticsRepository pushes aggregation into the database rather than
// scanning collections in application code.
type AnalyticsRepository interface {
	SalesTotals(ctx context.Context) (*SalesAnalytics, error)
	InventoryTotals(ctx context.Context) (*InventoryAnalytics, error)
	ProductCount(ctx context.Context) (int64, error)
	SupplierCount(ctx context.Context) (int64, error)
	SaleCount(ctx context.Context) (int64, error)
}

type AnalyticsService interface {
	Sales(ctx context.Context) (*SalesAnalytics, error)
	Inventory(ctx context.Context) (*InventoryAnalytics, error)
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}
