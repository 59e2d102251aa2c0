package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsDiscount_RoundsDownToCent(t *testing.T) {
	assert.InDelta(t, 2.50, PointsDiscount(50), 1e-9)
	assert.InDelta(t, 0.05, PointsDiscount(1), 1e-9)
	// 33/20 = 1.65 exactly; 7/20 = 0.35
	assert.InDelta(t, 1.65, PointsDiscount(33), 1e-9)
	assert.Zero(t, PointsDiscount(0))
}

func TestRedemption_AcceptsWithinBalanceAndTotal(t *testing.T) {
	r := &Redemption{Available: 50, Total: 3.00}

	err := r.Request(50)

	require.NoError(t, err)
	assert.Equal(t, 50, r.Points)
	assert.InDelta(t, 2.50, r.Discount(), 1e-9)
	assert.InDelta(t, 0.50, r.FinalTotal(), 1e-9)
}

func TestRedemption_RejectsInsufficientBalance(t *testing.T) {
	r := &Redemption{Available: 50, Total: 3.00, Points: 20}

	err := r.Request(80)

	assert.ErrorIs(t, err, ErrInsufficientPoints)
	// redeemed amount unchanged on rejection
	assert.Equal(t, 20, r.Points)
}

func TestRedemption_ClampsWhenDiscountExceedsTotal(t *testing.T) {
	r := &Redemption{Available: 500, Total: 3.00}

	err := r.Request(200) // would be a $10 discount on a $3 order

	assert.ErrorIs(t, err, ErrExceedsOrderTotal)
	assert.Equal(t, 60, r.Points) // floor(3.00 * 20)
	assert.InDelta(t, 3.00, r.Discount(), 1e-9)
	assert.Zero(t, r.FinalTotal())
}

func TestRedemption_UseMaxCappedByTotal(t *testing.T) {
	r := &Redemption{Available: 500, Total: 3.00}
	r.UseMax()
	assert.Equal(t, 60, r.Points)
}

func TestRedemption_UseMaxCappedByBalance(t *testing.T) {
	r := &Redemption{Available: 40, Total: 3.00}
	r.UseMax()
	assert.Equal(t, 40, r.Points)
}

func TestRedemption_NoCustomerHasNothingToRedeem(t *testing.T) {
	r := &Redemption{Available: 0, Total: 10.00}

	assert.ErrorIs(t, r.Request(1), ErrInsufficientPoints)
	r.UseMax()
	assert.Zero(t, r.Points)
	assert.InDelta(t, 10.00, r.FinalTotal(), 1e-9)
}

func TestRedemption_FinalTotalFloorsAtZero(t *testing.T) {
	r := &Redemption{Available: 1000, Total: 2.00, Points: 60}
	assert.Zero(t, r.FinalTotal())
}
