package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// ReceiptTaxLine is one row of the printed tax breakdown.
type ReceiptTaxLine struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	TaxType    string  `json:"tax_type"`
	Amount     float64 `json:"amount"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from order data at print time.
type Receipt struct {
	Header            ReceiptHeader    `json:"header"`
	InvoiceNo         string           `json:"invoice_no"`
	Date              string           `json:"date"`
	Cashier           string           `json:"cashier,omitempty"`
	Customer          string           `json:"customer,omitempty"`
	PaymentType       string           `json:"payment_type,omitempty"`
	Items             []ReceiptItem    `json:"items"`
	SubTotal          float64          `json:"sub_total"`
	TaxLines          []ReceiptTaxLine `json:"tax_lines,omitempty"`
	Tax               float64          `json:"tax"`
	Discount          float64          `json:"discount"`
	LoyaltyPointsUsed int              `json:"loyalty_points_used,omitempty"`
	Total             float64          `json:"total"`
}
