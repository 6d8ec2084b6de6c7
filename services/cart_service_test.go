package services

import (
	"context"
	"testing"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateItem_AddAccumulates(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")
	ctx := context.Background()

	var view *CartView
	var err error
	for i := 0; i < 3; i++ {
		view, err = f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
		require.NoError(t, err)
	}

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("240.00")),
		"total = %s", view.Total)
}

func TestUpdateItem_RemoveDecrements(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
		require.NoError(t, err)
	}
	view, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "remove")
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
}

func TestUpdateItem_RemoveToZeroDeletesLine(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")
	ctx := context.Background()

	_, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
	require.NoError(t, err)
	view, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "remove")
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())

	// the row is gone for real, not soft-deleted
	var count int64
	require.NoError(t, f.db.Unscoped().Model(&entity.OrderItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateItem_ReAddAfterDelete(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")
	ctx := context.Background()

	_, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
	require.NoError(t, err)
	_, err = f.cart.UpdateItem(ctx, user.ID, p.ID, "remove")
	require.NoError(t, err)

	view, err := f.cart.UpdateItem(ctx, user.ID, p.ID, "add")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)
}

func TestUpdateItem_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")

	_, err := f.cart.UpdateItem(context.Background(), user.ID, 999, "add")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateItem_InvalidAction(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")

	_, err := f.cart.UpdateItem(context.Background(), user.ID, p.ID, "clear")
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestUpdateItem_CreatesCustomerLazily(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "lazy@example.com")
	p := f.seedProduct(t, "Masala Dosa", "80.00")

	_, err := f.cart.UpdateItem(context.Background(), user.ID, p.ID, "add")
	require.NoError(t, err)

	customer, err := f.customerRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test", customer.Name)
	assert.Equal(t, user.Email, customer.Email)
}

func TestView_OverlayRepricesMatchingLineOnly(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	dosa := f.seedProduct(t, "Masala Dosa", "80.00")
	idli := f.seedProduct(t, "Idli", "40.00")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.cart.UpdateItem(ctx, user.ID, dosa.ID, "add")
		require.NoError(t, err)
	}
	_, err := f.cart.UpdateItem(ctx, user.ID, idli.ID, "add")
	require.NoError(t, err)

	customer, err := f.customerRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(ctx, customer.ID, &repository.OfferOverlay{
		ProductID:       dosa.ID,
		DiscountPercent: 25,
		Price:           decimal.RequireFromString("60.00"),
	}))

	view, err := f.cart.View(ctx, user.ID)
	require.NoError(t, err)

	// 60.00 * 2 + 40.00 * 1
	assert.True(t, view.Total.Equal(decimal.RequireFromString("160.00")),
		"total = %s", view.Total)

	for _, line := range view.Lines {
		if line.ProductID == dosa.ID {
			require.NotNil(t, line.DiscountedPrice)
			assert.True(t, line.DiscountedPrice.Equal(decimal.RequireFromString("60.00")))
			assert.Equal(t, 25, line.DiscountPercent)
		} else {
			assert.Nil(t, line.DiscountedPrice)
		}
	}
}

func TestView_EmptyCartForNewUser(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "fresh@example.com")

	view, err := f.cart.View(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}
