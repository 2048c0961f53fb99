package service

import (
	"context"
	"time"

	"smart-sales-api/internal/repository"
)

// RecentWindow is the trailing period covered by the recent_* figures.
const RecentWindow = 30 * 24 * time.Hour

type DashboardSummary struct {
	TotalCustomers      int64   `json:"total_customers"`
	TotalProducts       int64   `json:"total_products"`
	TotalSales          int64   `json:"total_sales"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	LowStockCount       int64   `json:"low_stock_count"`
	RecentSales         int64   `json:"recent_sales_30_days"`
	RecentRevenue       float64 `json:"recent_revenue_30_days"`
}

type DashboardService interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	stats, err := s.repo.GetDashboardStats(ctx, s.now().Add(-RecentWindow))
	if err != nil {
		return nil, InternalError("Failed to load dashboard", err)
	}

	return &DashboardSummary{
		TotalCustomers:      stats.TotalCustomers,
		TotalProducts:       stats.TotalProducts,
		TotalSales:          stats.TotalSales,
		TotalRevenue:        stats.TotalRevenue.InexactFloat64(),
		TotalInventoryValue: stats.TotalInventoryValue.InexactFloat64(),
		LowStockCount:       stats.LowStockCount,
		RecentSales:         stats.RecentSales,
		RecentRevenue:       stats.RecentRevenue.InexactFloat64(),
	}, nil
}
