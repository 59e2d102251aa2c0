package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	domainRepo "github.com/wekesadev/sokopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetStoreOverview(ctx context.Context, branchID uuid.UUID) (*domainRepo.StoreOverviewResult, error) {
	var result domainRepo.StoreOverviewResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(o.total_amount), 0) / 100.0 as total_revenue,
			COUNT(o.id) as total_orders,
			COALESCE(AVG(o.total_amount), 0) / 100.0 as average_order_val
		FROM orders o
		WHERE o.branch_id = ? AND o.status = 1 AND o.deleted_at IS NULL
	`, branchID).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM customers WHERE deleted_at IS NULL
	`).Scan(&result.TotalCustomers).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, branchID uuid.UUID, days int) ([]domainRepo.DailySalesResult, error) {
	var results []domainRepo.DailySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(o.created_at) as date,
			COALESCE(SUM(o.total_amount), 0) / 100.0 as revenue,
			COUNT(o.id) as order_count
		FROM orders o
		WHERE o.branch_id = ?
			AND o.status = 1
			AND o.deleted_at IS NULL
			AND o.created_at >= CURRENT_DATE - (? * INTERVAL '1 day')
		GROUP BY DATE(o.created_at)
		ORDER BY date ASC
	`, branchID, days).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByPaymentMethod(ctx context.Context, branchID uuid.UUID) ([]domainRepo.PaymentMethodSalesResult, error) {
	var totalSales float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(o.total_amount), 0) / 100.0
		FROM orders o
		WHERE o.branch_id = ? AND o.status = 1 AND o.deleted_at IS NULL
	`, branchID).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		PaymentType int
		TotalSales  float64
		OrderCount  int
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			o.payment_type,
			COALESCE(SUM(o.total_amount), 0) / 100.0 as total_sales,
			COUNT(o.id) as order_count
		FROM orders o
		WHERE o.branch_id = ? AND o.status = 1 AND o.deleted_at IS NULL
		GROUP BY o.payment_type
		ORDER BY total_sales DESC
	`, branchID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.PaymentMethodSalesResult, 0, len(rows))
	for _, row := range rows {
		result := domainRepo.PaymentMethodSalesResult{
			PaymentType: enum.PaymentMethod(row.PaymentType).String(),
			TotalSales:  row.TotalSales,
			OrderCount:  row.OrderCount,
		}
		if totalSales > 0 {
			result.Percentage = row.TotalSales / totalSales * 100
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *analyticsRepository) GetRecentSales(ctx context.Context, branchID uuid.UUID, limit int) ([]domainRepo.RecentSaleResult, error) {
	var rows []struct {
		OrderID      uuid.UUID
		InvoiceNo    string
		CustomerName *string
		Total        float64
		PaymentType  int
		CreatedAt    time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id as order_id,
			o.invoice_no,
			c.name as customer_name,
			o.total_amount / 100.0 as total,
			o.payment_type,
			o.created_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.branch_id = ? AND o.status = 1 AND o.deleted_at IS NULL
		ORDER BY o.created_at DESC
		LIMIT ?
	`, branchID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.RecentSaleResult, 0, len(rows))
	for _, row := range rows {
		result := domainRepo.RecentSaleResult{
			OrderID:     row.OrderID,
			InvoiceNo:   row.InvoiceNo,
			Total:       row.Total,
			PaymentType: enum.PaymentMethod(row.PaymentType).String(),
			CreatedAt:   row.CreatedAt,
		}
		if row.CustomerName != nil {
			result.CustomerName = *row.CustomerName
		}
		results = append(results, result)
	}
	return results, nil
}
