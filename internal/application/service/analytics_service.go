package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
)

// AnalyticsService exposes read-only sales aggregates for the dashboard
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// GetStoreOverview returns headline totals for the branch.
func (s *AnalyticsService) GetStoreOverview(ctx context.Context, branchID uuid.UUID) (*repository.StoreOverviewResult, error) {
	return s.analyticsRepo.GetStoreOverview(ctx, branchID)
}

// GetDailySales returns per-day revenue for the last N days (default 7,
// capped at 90).
func (s *AnalyticsService) GetDailySales(ctx context.Context, branchID uuid.UUID, days int) ([]repository.DailySalesResult, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	return s.analyticsRepo.GetDailySales(ctx, branchID, days)
}

// GetSalesByPaymentMethod returns revenue split by payment method.
func (s *AnalyticsService) GetSalesByPaymentMethod(ctx context.Context, branchID uuid.UUID) ([]repository.PaymentMethodSalesResult, error) {
	return s.analyticsRepo.GetSalesByPaymentMethod(ctx, branchID)
}

// GetRecentSales returns the latest completed orders (default 10, capped
// at 50).
func (s *AnalyticsService) GetRecentSales(ctx context.Context, branchID uuid.UUID, limit int) ([]repository.RecentSaleResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return s.analyticsRepo.GetRecentSales(ctx, branchID, limit)
}
