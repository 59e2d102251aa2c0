package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

func TestSubtotal_IndependentOfTaxStatus(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 12.5, Quantity: 2},
		{ProductID: uuid.New(), SellingPrice: 3, Quantity: 4, TaxExempt: true},
	}

	assert.InDelta(t, 37.0, Subtotal(items), 1e-6)
}

func TestDiscountAmount_Percentage(t *testing.T) {
	d := Discount{Type: enum.DiscountPercentage, Value: 10}
	assert.InDelta(t, 20.0, DiscountAmount(200, d), 1e-6)
}

func TestDiscountAmount_FixedVerbatim(t *testing.T) {
	d := Discount{Type: enum.DiscountFixed, Value: 250}
	// not clamped to the subtotal; Total handles the floor
	assert.InDelta(t, 250.0, DiscountAmount(200, d), 1e-6)
}

func TestTotal_ExclusiveTaxWithPercentageDiscount(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 100, Quantity: 2},
	}
	d := Discount{Type: enum.DiscountPercentage, Value: 10}

	// 200 + 36 - 20
	assert.InDelta(t, 216.0, Total(items, d, 18), 1e-6)
}

func TestTotal_InclusiveTaxAddsExtractedAmount(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 100, Quantity: 2, TaxCategory: &TaxCategoryRef{
			ID: uuid.New(), Name: "Standard Rate", Percentage: 18, TaxType: enum.TaxTypeInclusive,
		}},
	}

	// 200 + (200 - 200/1.18)
	assert.InDelta(t, 230.50847457627117, Total(items, Discount{Type: enum.DiscountPercentage}, 18), 1e-6)
}

func TestTotal_ClampsAtZeroOnOversizedFixedDiscount(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 10, Quantity: 1},
	}
	d := Discount{Type: enum.DiscountFixed, Value: 500}

	assert.Zero(t, Total(items, d, 18))
}
