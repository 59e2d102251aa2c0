package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesadev/sokopos-api/internal/config"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

type recordingPrinter struct {
	jobs     [][]byte
	printErr error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.printErr != nil {
		return p.printErr
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) Close() error      { return nil }
func (p *recordingPrinter) IsConnected() bool { return true }

func sampleOrder() *entity.Order {
	customer := &entity.Customer{ID: uuid.New(), Name: "Jane Doe"}
	return &entity.Order{
		ID:                uuid.New(),
		InvoiceNo:         "INV-a1b2c3d4",
		Status:            enum.OrderStatusCompleted,
		SubTotal:          20000,
		Tax:               3600,
		Discount:          500,
		TotalAmount:       23100,
		LoyaltyPointsUsed: 100,
		PaymentType:       enum.PaymentCash,
		CreatedAt:         time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
		Customer:          customer,
		Cashier:           entity.Cashier{FullName: "John Till"},
		Items: []entity.OrderItem{
			{
				ProductID: uuid.New(),
				Quantity:  2,
				Price:     10000,
				Total:     20000,
				Product:   entity.Product{Name: "Rice 2kg"},
			},
		},
		TaxBreakdown: []entity.OrderTaxBreakdown{
			{Name: "Standard Tax", Percentage: 18, TaxType: enum.TaxTypeExclusive, SubTotal: 20000, TaxAmount: 3600},
		},
	}
}

func newReceiptFixture(p *recordingPrinter) (*ReceiptService, *fakeOrderRepo, *entity.Order) {
	order := sampleOrder()
	orderRepo := &fakeOrderRepo{created: []*entity.Order{order}}
	svc := NewReceiptService(p, orderRepo,
		config.StoreConfig{Name: "Soko POS", Address: "Moi Avenue, Nairobi", Phone: "+254700000000", TaxID: "P051234567X"},
		config.PrinterConfig{Type: "usb", CharWidth: 48},
	)
	return svc, orderRepo, order
}

func TestBuildReceipt(t *testing.T) {
	svc, _, order := newReceiptFixture(&recordingPrinter{})

	receipt, err := svc.BuildReceipt(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, "Soko POS", receipt.Header.StoreName)
	assert.Equal(t, "INV-a1b2c3d4", receipt.InvoiceNo)
	assert.Equal(t, "Jane Doe", receipt.Customer)
	assert.Equal(t, "John Till", receipt.Cashier)
	assert.Equal(t, "CASH", receipt.PaymentType)
	assert.Equal(t, 200.0, receipt.SubTotal)
	assert.Equal(t, 36.0, receipt.Tax)
	assert.Equal(t, 5.0, receipt.Discount)
	assert.Equal(t, 231.0, receipt.Total)
	assert.Equal(t, 100, receipt.LoyaltyPointsUsed)

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Rice 2kg", receipt.Items[0].Name)
	assert.Equal(t, 100.0, receipt.Items[0].UnitPrice)

	require.Len(t, receipt.TaxLines, 1)
	assert.Equal(t, "Standard Tax", receipt.TaxLines[0].Name)
	assert.Equal(t, 36.0, receipt.TaxLines[0].Amount)
}

func TestBuildReceipt_OrderNotFound(t *testing.T) {
	svc, _, _ := newReceiptFixture(&recordingPrinter{})

	receipt, err := svc.BuildReceipt(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, receipt)
}

func TestRenderReceiptHTML(t *testing.T) {
	svc, _, order := newReceiptFixture(&recordingPrinter{})

	html, err := svc.RenderReceiptHTML(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Contains(t, html, "INV-a1b2c3d4")
	assert.Contains(t, html, "Rice 2kg")
	assert.Contains(t, html, "Standard Tax (18%)")
	assert.Contains(t, html, "231.00")
	assert.Contains(t, html, "Points used")
}

func TestRenderInvoiceHTML(t *testing.T) {
	svc, _, order := newReceiptFixture(&recordingPrinter{})

	html, err := svc.RenderInvoiceHTML(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Contains(t, html, "INVOICE")
	assert.Contains(t, html, "INV-a1b2c3d4")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "EXCLUSIVE")
}

func TestFormatReceipt(t *testing.T) {
	svc, _, order := newReceiptFixture(&recordingPrinter{})

	receipt, err := svc.BuildReceipt(context.Background(), order.ID)
	require.NoError(t, err)

	data := svc.FormatReceipt(receipt)

	assert.Contains(t, string(data), "Soko POS")
	assert.Contains(t, string(data), "Rice 2kg")
	assert.Contains(t, string(data), "TOTAL:")
	assert.Contains(t, string(data), "Points used:")
}

func TestPrintOrderReceipt(t *testing.T) {
	p := &recordingPrinter{}
	svc, _, order := newReceiptFixture(p)

	receipt, err := svc.PrintOrderReceipt(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, "INV-a1b2c3d4", receipt.InvoiceNo)
	assert.Len(t, p.jobs, 1)
}

func TestPrintOrderReceipt_PrinterError(t *testing.T) {
	p := &recordingPrinter{printErr: errors.New("device not found")}
	svc, _, order := newReceiptFixture(p)

	// The composed receipt comes back even when printing fails, so the
	// register can fall back to on-screen display.
	receipt, err := svc.PrintOrderReceipt(context.Background(), order.ID)

	require.Error(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "INV-a1b2c3d4", receipt.InvoiceNo)
}

func TestGetPrinterStatus(t *testing.T) {
	svc, _, _ := newReceiptFixture(&recordingPrinter{})

	status := svc.GetPrinterStatus()

	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "usb", status.Type)
}
