package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-sales-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDashboardService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)

	t.Run("ConvertsStatsAndUsesTrailingWindow", func(t *testing.T) {
		repo := &mockDashboardRepo{stats: &repository.DashboardStats{
			TotalCustomers:      3,
			TotalProducts:       2,
			TotalSales:          4,
			TotalRevenue:        decimal.RequireFromString("150.25"),
			TotalInventoryValue: decimal.RequireFromString("80.5"),
			LowStockCount:       1,
			RecentSales:         2,
			RecentRevenue:       decimal.RequireFromString("50"),
		}}
		svc := &dashboardService{repo: repo, now: func() time.Time { return now }}

		summary, err := svc.GetSummary(ctx)
		require.NoError(t, err)
		require.Equal(t, now.AddDate(0, 0, -30), repo.since)
		require.Equal(t, int64(3), summary.TotalCustomers)
		require.Equal(t, 150.25, summary.TotalRevenue)
		require.Equal(t, 80.5, summary.TotalInventoryValue)
		require.Equal(t, int64(1), summary.LowStockCount)
		require.Equal(t, int64(2), summary.RecentSales)
		require.Equal(t, 50.0, summary.RecentRevenue)
	})

	t.Run("EmptyDatabaseIsAllZero", func(t *testing.T) {
		repo := &mockDashboardRepo{stats: &repository.DashboardStats{}}
		summary, err := NewDashboardService(repo).GetSummary(ctx)
		require.NoError(t, err)
		require.Equal(t, DashboardSummary{}, *summary)
	})

	t.Run("RepositoryFailureIsInternal", func(t *testing.T) {
		repo := &mockDashboardRepo{err: errors.New("connection refused")}
		_, err := NewDashboardService(repo).GetSummary(ctx)
		require.Equal(t, KindInternal, KindOf(err))
	})
}
