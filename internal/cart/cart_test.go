package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

func lineItem(price float64) LineItem {
	return LineItem{ProductID: uuid.New(), Name: "Item", SKU: "SKU-1", SellingPrice: price}
}

func TestCart_AddItemDeduplicatesByProduct(t *testing.T) {
	c := New()
	item := lineItem(10)

	c.AddItem(item)
	c.AddItem(item)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestCart_AddItemPreservesInsertionOrder(t *testing.T) {
	c := New()
	first := lineItem(10)
	second := lineItem(20)

	c.AddItem(first)
	c.AddItem(second)
	c.AddItem(first)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, first.ProductID, snap.Items[0].ProductID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, second.ProductID, snap.Items[1].ProductID)
}

func TestCart_UpdateQuantitySetsExactly(t *testing.T) {
	c := New()
	item := lineItem(10)
	c.AddItem(item)

	c.UpdateQuantity(item.ProductID, 5)

	assert.Equal(t, 5, c.Snapshot().Items[0].Quantity)
}

func TestCart_UpdateQuantityZeroRemovesItem(t *testing.T) {
	c := New()
	item := lineItem(10)
	c.AddItem(item)

	c.UpdateQuantity(item.ProductID, 0)
	assert.Empty(t, c.Snapshot().Items)

	c.AddItem(item)
	c.UpdateQuantity(item.ProductID, -3)
	assert.Empty(t, c.Snapshot().Items)
}

func TestCart_RemoveItemUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(lineItem(10))

	c.RemoveItem(uuid.New())

	assert.Len(t, c.Snapshot().Items, 1)
}

func TestCart_ClearResetsEverythingButHeldOrders(t *testing.T) {
	c := New()
	c.AddItem(lineItem(10))
	c.Hold()
	c.AddItem(lineItem(20))
	c.SetCustomer(&CustomerRef{ID: uuid.New(), Name: "Jane", LoyaltyPoints: 100})
	c.SetNote("no onions")
	c.SetDiscount(Discount{Type: enum.DiscountFixed, Value: 5})
	c.SetPaymentMethod(enum.PaymentCard)

	c.Clear()

	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Customer)
	assert.Empty(t, snap.Note)
	assert.Equal(t, Discount{Type: enum.DiscountPercentage, Value: 0}, snap.Discount)
	assert.Equal(t, enum.PaymentCash, snap.PaymentMethod)
	assert.Len(t, snap.HeldOrders, 1)
}

func TestCart_HoldEmptyCartIsNoop(t *testing.T) {
	c := New()

	id := c.Hold()

	assert.Empty(t, id)
	assert.Empty(t, c.Snapshot().HeldOrders)
}

func TestCart_HoldSnapshotsAndPreservesPaymentMethod(t *testing.T) {
	c := New()
	item := lineItem(10)
	c.AddItem(item)
	c.SetCustomer(&CustomerRef{ID: uuid.New(), Name: "Jane"})
	c.SetNote("gift wrap")
	c.SetDiscount(Discount{Type: enum.DiscountPercentage, Value: 10})
	c.SetPaymentMethod(enum.PaymentMobileMoney)

	id := c.Hold()

	require.NotEmpty(t, id)
	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Customer)
	assert.Empty(t, snap.Note)
	// unlike a full reset the payment method survives a hold
	assert.Equal(t, enum.PaymentMobileMoney, snap.PaymentMethod)

	require.Len(t, snap.HeldOrders, 1)
	held := snap.HeldOrders[0]
	assert.Equal(t, id, held.ID)
	require.Len(t, held.Items, 1)
	assert.Equal(t, item.ProductID, held.Items[0].ProductID)
	assert.Equal(t, "gift wrap", held.Note)
}

func TestCart_ResumeRestoresAndRemovesHeldOrder(t *testing.T) {
	c := New()
	item := lineItem(10)
	c.AddItem(item)
	c.SetNote("held note")
	id := c.Hold()

	err := c.Resume(id)

	require.NoError(t, err)
	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, item.ProductID, snap.Items[0].ProductID)
	assert.Equal(t, "held note", snap.Note)
	assert.Empty(t, snap.HeldOrders)
}

func TestCart_ResumeUnknownIDLeavesCartUntouched(t *testing.T) {
	c := New()
	c.AddItem(lineItem(10))

	err := c.Resume("does-not-exist")

	assert.ErrorIs(t, err, ErrHeldOrderNotFound)
	assert.Len(t, c.Snapshot().Items, 1)
}

func TestCart_HoldThenMutateDoesNotAffectSnapshot(t *testing.T) {
	c := New()
	item := lineItem(10)
	c.AddItem(item)
	id := c.Hold()

	// build a second cart and change quantities before resuming
	c.AddItem(LineItem{ProductID: item.ProductID, SellingPrice: 10, Quantity: 7})

	require.NoError(t, c.Resume(id))
	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestCart_MarkPointsRedeemedClearedOnReset(t *testing.T) {
	c := New()
	c.AddItem(lineItem(10))
	c.MarkPointsRedeemed(40)
	assert.Equal(t, 40, c.Snapshot().RedeemedPoints)

	c.ResetOrder()
	assert.Zero(t, c.Snapshot().RedeemedPoints)
}

func TestCart_SnapshotIsDeepCopy(t *testing.T) {
	c := New()
	item := lineItem(10)
	item.TaxCategory = &TaxCategoryRef{ID: uuid.New(), Name: "Standard Rate", Percentage: 18}
	c.AddItem(item)

	snap := c.Snapshot()
	snap.Items[0].Quantity = 99
	snap.Items[0].TaxCategory.Percentage = 50

	fresh := c.Snapshot()
	assert.Equal(t, 1, fresh.Items[0].Quantity)
	assert.InDelta(t, 18.0, fresh.Items[0].TaxCategory.Percentage, 1e-9)
}

func TestStore_GetCreatesPerCashierCart(t *testing.T) {
	s := NewStore()
	a, b := uuid.New(), uuid.New()

	ca := s.Get(a)
	ca.AddItem(lineItem(10))

	assert.Same(t, ca, s.Get(a))
	assert.Empty(t, s.Get(b).Snapshot().Items)

	s.Remove(a)
	assert.Empty(t, s.Get(a).Snapshot().Items)
}
