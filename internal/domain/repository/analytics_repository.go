package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoreOverviewResult aggregates headline figures for the dashboard
type StoreOverviewResult struct {
	TotalRevenue    float64
	TotalOrders     int64
	TotalCustomers  int64
	AverageOrderVal float64
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date       time.Time
	Revenue    float64
	OrderCount int
}

// PaymentMethodSalesResult represents sales aggregated by payment method
type PaymentMethodSalesResult struct {
	PaymentType string
	TotalSales  float64
	OrderCount  int
	Percentage  float64
}

// RecentSaleResult is a compact row for the recent-sales feed
type RecentSaleResult struct {
	OrderID      uuid.UUID
	InvoiceNo    string
	CustomerName string
	Total        float64
	PaymentType  string
	CreatedAt    time.Time
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetStoreOverview returns headline totals for the branch
	GetStoreOverview(ctx context.Context, branchID uuid.UUID) (*StoreOverviewResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, branchID uuid.UUID, days int) ([]DailySalesResult, error)

	// GetSalesByPaymentMethod returns sales aggregated by payment method with percentages
	GetSalesByPaymentMethod(ctx context.Context, branchID uuid.UUID) ([]PaymentMethodSalesResult, error)

	// GetRecentSales returns the latest completed orders
	GetRecentSales(ctx context.Context, branchID uuid.UUID, limit int) ([]RecentSaleResult, error)
}
