package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

func TestComputeBreakdown_DefaultRateExclusive(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), Name: "Soda", SellingPrice: 100, Quantity: 2},
	}

	lines := ComputeBreakdown(items, 18)

	require.Len(t, lines, 1)
	assert.Equal(t, "Standard Tax", lines[0].Name)
	assert.Equal(t, enum.TaxTypeExclusive, lines[0].TaxType)
	assert.InDelta(t, 200.0, lines[0].Subtotal, 1e-6)
	assert.InDelta(t, 36.0, lines[0].TaxAmount, 1e-6)
}

func TestComputeBreakdown_InclusiveExtractsTax(t *testing.T) {
	catID := uuid.New()
	items := []LineItem{
		{
			ProductID:    uuid.New(),
			Name:         "Bread",
			SellingPrice: 100,
			Quantity:     2,
			TaxCategory: &TaxCategoryRef{
				ID: catID, Name: "Standard Rate", Percentage: 18, TaxType: enum.TaxTypeInclusive,
			},
		},
	}

	lines := ComputeBreakdown(items, 18)

	require.Len(t, lines, 1)
	assert.InDelta(t, 200.0, lines[0].Subtotal, 1e-6)
	// 200 - 200/1.18
	assert.InDelta(t, 30.508474576271183, lines[0].TaxAmount, 1e-6)
	// extracted tax plus the net amount reconstructs the gross subtotal
	net := lines[0].Subtotal / (1 + lines[0].Percentage/100)
	assert.InDelta(t, lines[0].Subtotal, net+lines[0].TaxAmount, 1e-6)
}

func TestComputeBreakdown_ExemptItemsZeroTax(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), Name: "Medicine", SellingPrice: 50, Quantity: 3, TaxExempt: true},
	}

	lines := ComputeBreakdown(items, 18)

	require.Len(t, lines, 1)
	assert.Equal(t, "Tax Exempt", lines[0].Name)
	assert.InDelta(t, 150.0, lines[0].Subtotal, 1e-6)
	assert.Zero(t, lines[0].TaxAmount)
}

func TestComputeBreakdown_GroupsByRuleFirstSeenOrder(t *testing.T) {
	reduced := &TaxCategoryRef{ID: uuid.New(), Name: "Reduced Rate", Percentage: 5, TaxType: enum.TaxTypeExclusive}
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 10, Quantity: 1, TaxCategory: reduced},
		{ProductID: uuid.New(), SellingPrice: 20, Quantity: 1},
		{ProductID: uuid.New(), SellingPrice: 30, Quantity: 1, TaxExempt: true},
		{ProductID: uuid.New(), SellingPrice: 40, Quantity: 2, TaxCategory: reduced},
		{ProductID: uuid.New(), SellingPrice: 50, Quantity: 1},
	}

	lines := ComputeBreakdown(items, 18)

	require.Len(t, lines, 3)
	assert.Equal(t, "Reduced Rate", lines[0].Name)
	assert.Equal(t, "Standard Tax", lines[1].Name)
	assert.Equal(t, "Tax Exempt", lines[2].Name)

	assert.InDelta(t, 90.0, lines[0].Subtotal, 1e-6)
	assert.InDelta(t, 4.5, lines[0].TaxAmount, 1e-6)
	assert.InDelta(t, 70.0, lines[1].Subtotal, 1e-6)
	assert.InDelta(t, 12.6, lines[1].TaxAmount, 1e-6)
	assert.InDelta(t, 30.0, lines[2].Subtotal, 1e-6)
}

func TestComputeBreakdown_ExemptWinsOverCategory(t *testing.T) {
	items := []LineItem{
		{
			ProductID:    uuid.New(),
			SellingPrice: 100,
			Quantity:     1,
			TaxExempt:    true,
			TaxCategory:  &TaxCategoryRef{ID: uuid.New(), Name: "Standard Rate", Percentage: 18},
		},
	}

	lines := ComputeBreakdown(items, 18)

	require.Len(t, lines, 1)
	assert.Equal(t, "Tax Exempt", lines[0].Name)
	assert.Zero(t, lines[0].TaxAmount)
}

func TestComputeBreakdown_EmptyCart(t *testing.T) {
	assert.Empty(t, ComputeBreakdown(nil, 18))
	assert.Zero(t, TotalTax(nil, 18))
}

func TestTotalTax_SumsAcrossRules(t *testing.T) {
	items := []LineItem{
		{ProductID: uuid.New(), SellingPrice: 100, Quantity: 1},
		{ProductID: uuid.New(), SellingPrice: 100, Quantity: 1, TaxCategory: &TaxCategoryRef{
			ID: uuid.New(), Name: "Reduced Rate", Percentage: 5, TaxType: enum.TaxTypeExclusive,
		}},
	}

	assert.InDelta(t, 23.0, TotalTax(items, 18), 1e-6)
}
