package services

import (
	"testing"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) (*BookingService, *fixture) {
	f := newFixture(t)
	return NewBookingService(repository.NewBookingRepository(f.db)), f
}

func TestBookingCreate(t *testing.T) {
	svc, _ := newBookingService(t)

	b, err := svc.Create(&BookingIn{
		CustomerName:  "Arjun",
		CustomerPhone: "9876543210",
		Date:          "2026-09-15",
		Time:          "19:30",
		Guests:        4,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingPending, b.Status)
	assert.NotEmpty(t, b.Reference)
	assert.Nil(t, b.TableID)
}

func TestBookingCreate_UnknownTable(t *testing.T) {
	svc, _ := newBookingService(t)
	tableID := uint(42)

	_, err := svc.Create(&BookingIn{
		CustomerName:  "Arjun",
		CustomerPhone: "9876543210",
		TableID:       &tableID,
		Date:          "2026-09-15",
		Time:          "19:30",
		Guests:        2,
	})
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestBookingStatusTransitions(t *testing.T) {
	svc, _ := newBookingService(t)

	b, err := svc.Create(&BookingIn{
		CustomerName:  "Arjun",
		CustomerPhone: "9876543210",
		Date:          "2026-09-15",
		Time:          "19:30",
		Guests:        2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(b.ID, entity.BookingConfirmed))
	require.ErrorIs(t, svc.UpdateStatus(b.ID, "Eaten"), ErrInvalidStatus)
	require.ErrorIs(t, svc.UpdateStatus(999, entity.BookingCancelled), ErrBookingNotFound)
}

func TestDeleteTable_DetachesBookings(t *testing.T) {
	svc, f := newBookingService(t)

	table, err := svc.CreateTable(&TableIn{TableNumber: 7, Capacity: 4})
	require.NoError(t, err)

	b, err := svc.Create(&BookingIn{
		CustomerName:  "Arjun",
		CustomerPhone: "9876543210",
		TableID:       &table.ID,
		Date:          "2026-09-15",
		Time:          "19:30",
		Guests:        2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTable(table.ID))

	var got entity.Booking
	require.NoError(t, f.db.First(&got, b.ID).Error)
	assert.Nil(t, got.TableID)
}
