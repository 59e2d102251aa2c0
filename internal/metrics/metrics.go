// Package metrics exposes Prometheus counters for the checkout flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts completed checkouts by payment type.
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokopos_orders_created_total",
		Help: "Orders created, labeled by payment type.",
	}, []string{"payment_type"})

	// SalesAmount accumulates the payable totals of completed orders.
	SalesAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokopos_sales_amount_total",
		Help: "Cumulative sales amount of completed orders.",
	})

	// LoyaltyPointsRedeemed accumulates points spent at checkout.
	LoyaltyPointsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokopos_loyalty_points_redeemed_total",
		Help: "Loyalty points redeemed at checkout.",
	})

	// CheckoutFailures counts aborted checkouts by stage (redeem, create).
	CheckoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokopos_checkout_failures_total",
		Help: "Checkout attempts that failed, labeled by stage.",
	}, []string{"stage"})

	// ReceiptsPrinted counts receipts sent to the configured printer.
	ReceiptsPrinted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokopos_receipts_printed_total",
		Help: "Receipts sent to the configured printer.",
	})
)
