package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price    string
		discount int
		want     string
	}{
		{"100.00", 25, "75.00"},
		{"100.00", 0, "100.00"},
		{"100.00", 100, "0.00"},
		{"99.99", 33, "66.99"},
		{"0.10", 50, "0.05"},
		{"199.50", 10, "179.55"},
	}
	for _, tc := range cases {
		got := DiscountedPrice(decimal.RequireFromString(tc.price), tc.discount)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"%s at %d%% = %s, want %s", tc.price, tc.discount, got, tc.want)
	}
}

func TestApply_StoresOverlayAndAddsUnit(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "offer@example.com")
	p := f.seedProduct(t, "Paneer Tikka", "100.00")
	ctx := context.Background()

	overlay, err := f.offers.Apply(ctx, user.ID, p.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, p.ID, overlay.ProductID)
	assert.Equal(t, 25, overlay.DiscountPercent)
	assert.True(t, overlay.Price.Equal(decimal.RequireFromString("75.00")))

	view, err := f.cart.View(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("75.00")))
}

func TestApply_IncrementsExistingQuantity(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "offer@example.com")
	p := f.seedProduct(t, "Paneer Tikka", "100.00")
	ctx := context.Background()

	_, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
	require.NoError(t, err)
	_, err = f.offers.Apply(ctx, user.ID, p.ID, 10)
	require.NoError(t, err)

	view, err := f.cart.View(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
}

func TestApply_SecondOfferReplacesFirst(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "offer@example.com")
	dosa := f.seedProduct(t, "Masala Dosa", "80.00")
	tikka := f.seedProduct(t, "Paneer Tikka", "100.00")
	ctx := context.Background()

	_, err := f.offers.Apply(ctx, user.ID, dosa.ID, 50)
	require.NoError(t, err)
	_, err = f.offers.Apply(ctx, user.ID, tikka.ID, 20)
	require.NoError(t, err)

	customer, err := f.customerRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	overlay, err := f.store.Get(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, overlay)
	assert.Equal(t, tikka.ID, overlay.ProductID)
	assert.Equal(t, 20, overlay.DiscountPercent)
	assert.True(t, overlay.Price.Equal(decimal.RequireFromString("80.00")))
}

func TestApply_DiscountOutOfRange(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "offer@example.com")
	p := f.seedProduct(t, "Paneer Tikka", "100.00")
	ctx := context.Background()

	_, err := f.offers.Apply(ctx, user.ID, p.ID, -1)
	require.ErrorIs(t, err, ErrInvalidDiscount)
	_, err = f.offers.Apply(ctx, user.ID, p.ID, 101)
	require.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestApply_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "offer@example.com")

	_, err := f.offers.Apply(context.Background(), user.ID, 404, 25)
	require.ErrorIs(t, err, ErrProductNotFound)
}
