package helper

import (
	"testing"
	"time"

	"ground_manager/constants"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpired(t *testing.T) {
	db := testDB(t)
	date := utils.NewDate(2026, 9, 12)

	lapsed := fixedNow.Add(-31 * time.Minute)
	stale := seedBooking(t, db, date, []int{14, 15}, model.BookingPending, &lapsed)

	live := fixedNow.Add(10 * time.Minute)
	fresh := seedBooking(t, db, date, []int{16}, model.BookingPending, &live)
	approved := seedBooking(t, db, date, []int{17}, model.BookingApproved, nil)

	released, err := SweepExpired(db, fixedNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, released)

	var swept model.Booking
	require.NoError(t, db.First(&swept, stale.ID).Error)
	assert.Equal(t, model.BookingCancelled, swept.Status)
	assert.Equal(t, constants.REASON_HOLD_EXPIRED, swept.CancelReason)
	assert.Nil(t, swept.PendingExpiresAt)

	var slots []model.Slot
	require.NoError(t, db.Where("booking_id = ?", stale.ID).Find(&slots).Error)
	for _, s := range slots {
		assert.Equal(t, model.SlotCancelled, s.Status)
	}

	// live holds and approved bookings are untouched
	var untouched model.Booking
	require.NoError(t, db.First(&untouched, fresh.ID).Error)
	assert.Equal(t, model.BookingPending, untouched.Status)
	var untouchedApproved model.Booking
	require.NoError(t, db.First(&untouchedApproved, approved.ID).Error)
	assert.Equal(t, model.BookingApproved, untouchedApproved.Status)
}

func TestSweepExpiredIsIdempotent(t *testing.T) {
	db := testDB(t)
	lapsed := fixedNow.Add(-time.Hour)
	seedBooking(t, db, utils.NewDate(2026, 9, 12), []int{14}, model.BookingPending, &lapsed)

	released, err := SweepExpired(db, fixedNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, released)

	released, err = SweepExpired(db, fixedNow)
	require.NoError(t, err)
	assert.Zero(t, released)
}

func TestSweepExpiredBoundary(t *testing.T) {
	db := testDB(t)

	// a hold expiring exactly now is still live; strictly-before lapses
	exact := fixedNow
	seedBooking(t, db, utils.NewDate(2026, 9, 12), []int{14}, model.BookingPending, &exact)

	released, err := SweepExpired(db, fixedNow)
	require.NoError(t, err)
	assert.Zero(t, released)

	released, err = SweepExpired(db, fixedNow.Add(time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 1, released)
}
