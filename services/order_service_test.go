package services

import (
	"testing"
	"time"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_MostRecentFirstWithRecomputedTotals(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "history@example.com")
	customer, err := f.customerRepo.GetOrCreateForUser(user.ID)
	require.NoError(t, err)

	p := f.seedProduct(t, "Thali", "150.00")

	old := f.seedCompletedOrder(t, customer.ID, map[*entity.Product]int{p: 1})
	require.NoError(t, f.db.Model(old).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)
	recent := f.seedCompletedOrder(t, customer.ID, map[*entity.Product]int{p: 3})

	orders, err := f.orders.History(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, recent.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("450.00")))
	assert.True(t, orders[1].Total.Equal(decimal.RequireFromString("150.00")))
}

func TestHistory_EmptyForNewUser(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "nobody@example.com")

	orders, err := f.orders.History(user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
