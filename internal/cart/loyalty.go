package cart

import (
	"errors"
	"math"
)

// PointsPerDollar is the loyalty conversion ratio: 20 points = $1.
const PointsPerDollar = 20

var (
	// ErrInsufficientPoints is returned when the request exceeds the
	// customer's balance; the redeemed amount is left unchanged.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	// ErrExceedsOrderTotal signals the request was clamped down to the
	// order total; the clamped amount IS applied.
	ErrExceedsOrderTotal = errors.New("points discount exceeds order total")
)

// PointsDiscount converts points to a dollar discount, rounded down to
// the cent.
func PointsDiscount(points int) float64 {
	return math.Floor(float64(points)/PointsPerDollar*100) / 100
}

// MaxPointsForTotal is the largest point count whose discount does not
// exceed the given order total.
func MaxPointsForTotal(total float64) int {
	return int(math.Floor(total * PointsPerDollar))
}

// Redemption validates and tracks a loyalty-point redemption against one
// order total. Available is the customer's balance (0 when no customer is
// attached), Total the composed order total, Points the accepted amount.
type Redemption struct {
	Available int
	Total     float64
	Points    int
}

// Request validates a user-entered point value. Requests above the
// customer's balance are rejected outright. Requests whose discount
// exceeds the order total are clamped to the total's point equivalent
// and reported with ErrExceedsOrderTotal.
func (r *Redemption) Request(points int) error {
	if points > r.Available {
		return ErrInsufficientPoints
	}
	if PointsDiscount(points) > r.Total {
		r.Points = MaxPointsForTotal(r.Total)
		return ErrExceedsOrderTotal
	}
	r.Points = points
	return nil
}

// UseMax applies the largest redeemable amount: the customer's balance,
// capped by the order total.
func (r *Redemption) UseMax() {
	max := MaxPointsForTotal(r.Total)
	if r.Available < max {
		max = r.Available
	}
	r.Points = max
}

// Discount is the dollar value of the accepted points.
func (r *Redemption) Discount() float64 {
	return PointsDiscount(r.Points)
}

// FinalTotal is the payable amount after the points discount, floored
// at zero.
func (r *Redemption) FinalTotal() float64 {
	final := r.Total - r.Discount()
	if final < 0 {
		return 0
	}
	return final
}
