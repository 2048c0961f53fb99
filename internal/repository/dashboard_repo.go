package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, since time.Time) (*DashboardStats, error)
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalCustomers      int64
	TotalProducts       int64
	TotalSales          int64
	TotalRevenue        decimal.Decimal
	TotalInventoryValue decimal.Decimal
	LowStockCount       int64
	RecentSales         int64
	RecentRevenue       decimal.Decimal
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// One statement so every figure comes from the same snapshot. Sums are
// coalesced so an empty table reports 0 rather than NULL.
const dashboardStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM customers) AS total_customers,
	(SELECT COUNT(*) FROM products) AS total_products,
	(SELECT COUNT(*) FROM sales) AS total_sales,
	(SELECT COALESCE(SUM(total), 0) FROM sales) AS total_revenue,
	(SELECT COALESCE(SUM(i.quantity_in_stock * p.cost), 0)
		FROM inventories i JOIN products p ON p.id = i.product_id) AS total_inventory_value,
	(SELECT COUNT(*) FROM inventories WHERE quantity_in_stock <= reorder_level) AS low_stock_count,
	(SELECT COUNT(*) FROM sales WHERE created_at >= @since) AS recent_sales,
	(SELECT COALESCE(SUM(total), 0) FROM sales WHERE created_at >= @since) AS recent_revenue
`

func (r *dashboardRepo) GetDashboardStats(ctx context.Context, since time.Time) (*DashboardStats, error) {
	var stats DashboardStats
	err := r.db.WithContext(ctx).
		Raw(dashboardStatsQuery, map[string]interface{}{"since": since}).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
