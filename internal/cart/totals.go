package cart

import "github.com/wekesadev/sokopos-api/internal/domain/enum"

// Subtotal is the plain sum of price*quantity over all items, independent
// of tax treatment or discounts.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.SellingPrice * float64(item.Quantity)
	}
	return sum
}

// DiscountAmount resolves the cart discount against the subtotal. A fixed
// discount is taken verbatim and may exceed the subtotal; Total clamps the
// result at zero.
func DiscountAmount(subtotal float64, discount Discount) float64 {
	switch discount.Type {
	case enum.DiscountFixed:
		return discount.Value
	default:
		return subtotal * discount.Value / 100
	}
}

// Total composes subtotal, tax and discount into the payable amount,
// clamped at zero so an oversized fixed discount never produces a
// negative total.
func Total(items []LineItem, discount Discount, defaultPercentage float64) float64 {
	total := Subtotal(items) + TotalTax(items, defaultPercentage) - DiscountAmount(Subtotal(items), discount)
	if total < 0 {
		return 0
	}
	return total
}
