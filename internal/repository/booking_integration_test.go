//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_CreateCancelRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 5, 5)

	b := newBooking(uuid.New().String(), classID)
	class, err := bookings.Create(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 4, class.SlotsLeft)

	res, err := bookings.Cancel(ctx, cancelInput(b))
	require.NoError(t, err)
	assert.False(t, res.SlotClamped)
	assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
	require.NotNil(t, res.Booking.CancelledAt)
	assert.Equal(t, domain.DefaultCancellationReason, *res.Booking.CancellationReason)
	assert.Equal(t, 5, res.Class.SlotsLeft)
	assert.Equal(t, 5, slotsLeft(t, ctx, classes, classID))
}

func TestBookingRepository_FullClassUnchanged(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 3, 0)

	_, err := bookings.Create(ctx, newBooking(uuid.New().String(), classID))

	require.ErrorIs(t, err, domain.ErrClassFull)
	assert.Equal(t, 0, slotsLeft(t, ctx, classes, classID))
}

func TestBookingRepository_SingleActiveBooking(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 5, 5)
	userID := uuid.New().String()

	_, err := bookings.Create(ctx, newBooking(userID, classID))
	require.NoError(t, err)

	_, err = bookings.Create(ctx, newBooking(userID, classID))
	require.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.Equal(t, 4, slotsLeft(t, ctx, classes, classID))

	active, err := bookings.GetActive(ctx, userID, classID)
	require.NoError(t, err)
	assert.Equal(t, userID, active.UserID)
}

func TestBookingRepository_RebookAfterCancel(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 2, 2)
	userID := uuid.New().String()

	first := newBooking(userID, classID)
	_, err := bookings.Create(ctx, first)
	require.NoError(t, err)
	_, err = bookings.Cancel(ctx, cancelInput(first))
	require.NoError(t, err)

	class, err := bookings.Create(ctx, newBooking(userID, classID))
	require.NoError(t, err)
	assert.Equal(t, 1, class.SlotsLeft)

	list, err := bookings.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBookingRepository_DoubleCancel(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 5, 5)

	b := newBooking(uuid.New().String(), classID)
	_, err := bookings.Create(ctx, b)
	require.NoError(t, err)
	_, err = bookings.Cancel(ctx, cancelInput(b))
	require.NoError(t, err)

	_, err = bookings.Cancel(ctx, cancelInput(b))

	require.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.Equal(t, 5, slotsLeft(t, ctx, classes, classID))
}

func TestBookingRepository_CancelOtherUsersBooking(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 5, 5)

	b := newBooking(uuid.New().String(), classID)
	_, err := bookings.Create(ctx, b)
	require.NoError(t, err)

	in := cancelInput(b)
	in.UserID = uuid.New().String()
	_, err = bookings.Cancel(ctx, in)

	require.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ReleaseClampsAtCapacity(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 3, 3)

	// An active booking whose slot was never taken off the ledger.
	b := newBooking(uuid.New().String(), classID)
	_, err := db.Master.Exec(`INSERT INTO bookings (id, user_id, class_id, status, created_at) VALUES ($1, $2, $3, 'active', now())`,
		b.ID, b.UserID, b.ClassID)
	require.NoError(t, err)

	res, err := bookings.Cancel(ctx, cancelInput(b))

	require.NoError(t, err)
	assert.True(t, res.SlotClamped)
	assert.Equal(t, 3, res.Class.SlotsLeft)
}

func TestBookingRepository_ConcurrentCreatesOnLastSlot(t *testing.T) {
	const n = 20
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 1, 1)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		full      int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := bookings.Create(ctx, newBooking(uuid.New().String(), classID))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrClassFull):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, full)
	assert.Equal(t, 0, slotsLeft(t, ctx, classes, classID))
}

func TestBookingRepository_ConcurrentCreateAndCancelKeepBounds(t *testing.T) {
	const users = 10
	ctx := context.Background()
	db := openTestDB(t)
	classes := NewClassRepo(db)
	bookings := NewBookingRepo(db)
	classID := seedClass(t, db, seedBusiness(t, db), 4, 4)

	var wg sync.WaitGroup
	for range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := newBooking(uuid.New().String(), classID)
			if _, err := bookings.Create(ctx, b); err != nil {
				return
			}
			_, _ = bookings.Cancel(ctx, cancelInput(b))
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, slotsLeft(t, ctx, classes, classID))
}
