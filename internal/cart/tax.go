package cart

import "github.com/wekesadev/sokopos-api/internal/domain/enum"

// DefaultTaxPercentage is applied when the branch carries no configured rate.
const DefaultTaxPercentage = 18.0

// TaxLine is one row of the tax breakdown: a distinct tax rule with the
// subtotal it covers and the tax amount it produces.
type TaxLine struct {
	Key        string       `json:"-"`
	Name       string       `json:"name"`
	Percentage float64      `json:"percentage"`
	TaxType    enum.TaxType `json:"taxType"`
	Subtotal   float64      `json:"subtotal"`
	TaxAmount  float64      `json:"taxAmount"`
}

// ComputeBreakdown groups the items by effective tax rule and returns one
// line per rule, in the order the rules were first encountered.
//
// Rule priority per item: tax-exempt items fall into a zero-rate "Tax
// Exempt" bucket; items with a captured tax category use that category's
// rate and type; everything else uses the branch default rate, exclusive.
//
// An INCLUSIVE rate means the selling price already contains the tax, so
// the tax is extracted: subtotal - subtotal/(1+rate/100). An EXCLUSIVE
// rate adds tax on top: subtotal * rate/100. Out-of-range percentages are
// accepted as-is; validation belongs to the admin boundary that created
// the category.
func ComputeBreakdown(items []LineItem, defaultPercentage float64) []TaxLine {
	var lines []TaxLine
	index := make(map[string]int)

	for _, item := range items {
		var rule TaxLine
		switch {
		case item.TaxExempt:
			rule = TaxLine{Key: "exempt", Name: "Tax Exempt", Percentage: 0, TaxType: enum.TaxTypeExclusive}
		case item.TaxCategory != nil:
			rule = TaxLine{
				Key:        "category_" + item.TaxCategory.ID.String(),
				Name:       item.TaxCategory.Name,
				Percentage: item.TaxCategory.Percentage,
				TaxType:    item.TaxCategory.TaxType,
			}
		default:
			rule = TaxLine{Key: "default", Name: "Standard Tax", Percentage: defaultPercentage, TaxType: enum.TaxTypeExclusive}
		}

		pos, ok := index[rule.Key]
		if !ok {
			pos = len(lines)
			index[rule.Key] = pos
			lines = append(lines, rule)
		}

		itemSubtotal := item.SellingPrice * float64(item.Quantity)
		lines[pos].Subtotal += itemSubtotal
		if lines[pos].TaxType == enum.TaxTypeInclusive {
			lines[pos].TaxAmount += itemSubtotal - itemSubtotal/(1+lines[pos].Percentage/100)
		} else {
			lines[pos].TaxAmount += itemSubtotal * (lines[pos].Percentage / 100)
		}
	}
	return lines
}

// TotalTax sums the tax amounts across the whole breakdown.
func TotalTax(items []LineItem, defaultPercentage float64) float64 {
	var total float64
	for _, line := range ComputeBreakdown(items, defaultPercentage) {
		total += line.TaxAmount
	}
	return total
}
