package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/config"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/internal/metrics"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
	"github.com/wekesadev/sokopos-api/pkg/printer"
)

// ReceiptService composes printable receipts and invoices from orders:
// HTML fragments for the register's print window and ESC/POS bytes for the
// thermal printer.
type ReceiptService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	store       config.StoreConfig
	printerType string
	charWidth   int

	receiptTmpl *template.Template
	invoiceTmpl *template.Template
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	store config.StoreConfig,
	printerCfg config.PrinterConfig,
) *ReceiptService {
	return &ReceiptService{
		printer:     p,
		orderRepo:   orderRepo,
		store:       store,
		printerType: printerCfg.Type,
		charWidth:   printerCfg.CharWidth,
		receiptTmpl: template.Must(template.New("receipt").Parse(receiptHTML)),
		invoiceTmpl: template.Must(template.New("invoice").Parse(invoiceHTML)),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes a receipt value object from a persisted order.
func (s *ReceiptService) BuildReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
			TaxID:     s.store.TaxID,
		},
		InvoiceNo:         order.InvoiceNo,
		Date:              order.CreatedAt.Format("2006-01-02 15:04"),
		PaymentType:       order.PaymentType.String(),
		SubTotal:          float64(order.SubTotal) / 100,
		Tax:               float64(order.Tax) / 100,
		Discount:          float64(order.Discount) / 100,
		LoyaltyPointsUsed: order.LoyaltyPointsUsed,
		Total:             float64(order.TotalAmount) / 100,
	}

	if order.Cashier.FullName != "" {
		receipt.Cashier = order.Cashier.FullName
	}
	if order.Customer != nil {
		receipt.Customer = order.Customer.Name
	}

	for _, item := range order.Items {
		line := entity.ReceiptItem{
			Quantity:  item.Quantity,
			UnitPrice: float64(item.Price) / 100,
			Total:     float64(item.Total) / 100,
		}
		if item.Product.Name != "" {
			line.Name = item.Product.Name
		} else {
			line.Name = "Product"
		}
		receipt.Items = append(receipt.Items, line)
	}

	for _, tb := range order.TaxBreakdown {
		receipt.TaxLines = append(receipt.TaxLines, entity.ReceiptTaxLine{
			Name:       tb.Name,
			Percentage: tb.Percentage,
			TaxType:    tb.TaxType.String(),
			Amount:     float64(tb.TaxAmount) / 100,
		})
	}

	return receipt, nil
}

// RenderReceiptHTML renders the 80mm receipt fragment for an order.
func (s *ReceiptService) RenderReceiptHTML(ctx context.Context, orderID uuid.UUID) (string, error) {
	receipt, err := s.BuildReceipt(ctx, orderID)
	if err != nil {
		return "", err
	}
	return s.render(s.receiptTmpl, receipt)
}

// RenderInvoiceHTML renders the full-page invoice for an order.
func (s *ReceiptService) RenderInvoiceHTML(ctx context.Context, orderID uuid.UUID) (string, error) {
	receipt, err := s.BuildReceipt(ctx, orderID)
	if err != nil {
		return "", err
	}
	return s.render(s.invoiceTmpl, receipt)
}

func (s *ReceiptService) render(tmpl *template.Template, receipt *entity.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, receipt); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}

// PrintOrderReceipt formats and sends an order receipt to the thermal
// printer. The composed receipt is returned either way so the handler can
// fall back to on-screen display when printing fails.
func (s *ReceiptService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	metrics.ReceiptsPrinted.Inc()
	return receipt, nil
}

// TestPrint sends a test page to the printer.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   s.store.Address,
			Phone:     s.store.Phone,
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Tax:      0.00,
		Total:    20.00,
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *ReceiptService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals with the per-rule tax breakdown
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	for _, tax := range r.TaxLines {
		doc.KeyValue(fmt.Sprintf("%s (%.0f%%):", tax.Name, tax.Percentage), fmt.Sprintf("%.2f", tax.Amount))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.LoyaltyPointsUsed > 0 {
		doc.KeyValue("Points used:", fmt.Sprintf("%d", r.LoyaltyPointsUsed))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for shopping with us!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

const receiptHTML = `<div class="receipt" style="width:80mm;font-family:monospace;font-size:12px">
  <div style="text-align:center">
    <h2 style="margin:0">{{.Header.StoreName}}</h2>
    {{if .Header.Address}}<div>{{.Header.Address}}</div>{{end}}
    {{if .Header.Phone}}<div>{{.Header.Phone}}</div>{{end}}
    {{if .Header.TaxID}}<div>Tax ID: {{.Header.TaxID}}</div>{{end}}
  </div>
  <hr>
  <div>Invoice: {{.InvoiceNo}}</div>
  <div>Date: {{.Date}}</div>
  {{if .Cashier}}<div>Cashier: {{.Cashier}}</div>{{end}}
  {{if .Customer}}<div>Customer: {{.Customer}}</div>{{end}}
  {{if .PaymentType}}<div>Payment: {{.PaymentType}}</div>{{end}}
  <hr>
  <table style="width:100%">
    {{range .Items}}
    <tr><td>{{.Quantity}}x {{.Name}}</td><td style="text-align:right">{{printf "%.2f" .Total}}</td></tr>
    {{end}}
  </table>
  <hr>
  <table style="width:100%">
    <tr><td>Subtotal</td><td style="text-align:right">{{printf "%.2f" .SubTotal}}</td></tr>
    {{range .TaxLines}}
    <tr><td>{{.Name}} ({{printf "%.0f" .Percentage}}%)</td><td style="text-align:right">{{printf "%.2f" .Amount}}</td></tr>
    {{end}}
    {{if gt .Discount 0.0}}<tr><td>Discount</td><td style="text-align:right">-{{printf "%.2f" .Discount}}</td></tr>{{end}}
    {{if gt .LoyaltyPointsUsed 0}}<tr><td>Points used</td><td style="text-align:right">{{.LoyaltyPointsUsed}}</td></tr>{{end}}
    <tr><td><strong>TOTAL</strong></td><td style="text-align:right"><strong>{{printf "%.2f" .Total}}</strong></td></tr>
  </table>
  <hr>
  <div style="text-align:center">Thank you for shopping with us!</div>
</div>`

const invoiceHTML = `<div class="invoice" style="max-width:800px;margin:0 auto;font-family:sans-serif">
  <div style="display:flex;justify-content:space-between">
    <div>
      <h1 style="margin:0">{{.Header.StoreName}}</h1>
      {{if .Header.Address}}<div>{{.Header.Address}}</div>{{end}}
      {{if .Header.Phone}}<div>{{.Header.Phone}}</div>{{end}}
      {{if .Header.TaxID}}<div>Tax ID: {{.Header.TaxID}}</div>{{end}}
    </div>
    <div style="text-align:right">
      <h2 style="margin:0">INVOICE</h2>
      <div>{{.InvoiceNo}}</div>
      <div>{{.Date}}</div>
    </div>
  </div>
  {{if .Customer}}<p>Billed to: <strong>{{.Customer}}</strong></p>{{end}}
  <table style="width:100%;border-collapse:collapse" border="1" cellpadding="6">
    <thead>
      <tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td>{{.Name}}</td>
        <td style="text-align:right">{{.Quantity}}</td>
        <td style="text-align:right">{{printf "%.2f" .UnitPrice}}</td>
        <td style="text-align:right">{{printf "%.2f" .Total}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <table style="width:40%;margin-left:auto;margin-top:12px">
    <tr><td>Subtotal</td><td style="text-align:right">{{printf "%.2f" .SubTotal}}</td></tr>
    {{range .TaxLines}}
    <tr><td>{{.Name}} ({{printf "%.0f" .Percentage}}%, {{.TaxType}})</td><td style="text-align:right">{{printf "%.2f" .Amount}}</td></tr>
    {{end}}
    {{if gt .Discount 0.0}}<tr><td>Discount</td><td style="text-align:right">-{{printf "%.2f" .Discount}}</td></tr>{{end}}
    <tr><td><strong>Total</strong></td><td style="text-align:right"><strong>{{printf "%.2f" .Total}}</strong></td></tr>
  </table>
  {{if .PaymentType}}<p>Paid via {{.PaymentType}}{{if gt .LoyaltyPointsUsed 0}} ({{.LoyaltyPointsUsed}} loyalty points applied){{end}}.</p>{{end}}
</div>`
