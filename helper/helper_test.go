package helper

import (
	"fmt"
	"testing"
	"time"

	"ground_manager/database"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Pure-Go sqlite; a second pooled connection would see a different
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create(&model.GroundSettings{
		DayRate:           1000,
		NightRate:         1500,
		NightStartHour:    17,
		NightEndHour:      7,
		MinAdvancePercent: 30,
	}).Error)
	return db
}

// fixedNow is a weekday morning; test bookings use dates after it.
var fixedNow = time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC)

var refSeq int

func seedBooking(t *testing.T, db *gorm.DB, date utils.CustomDate, hours []int, status model.BookingStatus, expiresAt *time.Time) *model.Booking {
	t.Helper()
	customer := model.Customer{Name: "Ravi Kumar", Phone: "9876543210"}
	require.NoError(t, db.Create(&customer).Error)

	slotStatus := model.SlotBooked
	if status == model.BookingPending {
		slotStatus = model.SlotPending
	}

	refSeq++
	booking := model.Booking{
		BookingRef:       fmt.Sprintf("CG-%s-9%02d", date.Format("20060102"), refSeq),
		CustomerId:       customer.ID,
		Date:             date,
		TotalHours:       len(hours),
		TotalAmount:      float64(len(hours)) * 1000,
		AdvanceAmount:    float64(len(hours)) * 300,
		AdvanceMethod:    model.PayCash,
		RemainingAmount:  float64(len(hours)) * 700,
		Status:           status,
		PendingExpiresAt: expiresAt,
	}
	require.NoError(t, db.Create(&booking).Error)

	for _, h := range hours {
		require.NoError(t, db.Create(&model.Slot{
			BookingId: booking.ID,
			Date:      date,
			Hour:      h,
			Rate:      1000,
			Status:    slotStatus,
		}).Error)
	}
	return &booking
}
