package helper

import (
	"time"

	"ground_manager/model"
	"ground_manager/utils"

	"gorm.io/gorm"
)

const HoursPerDay = 24

// occupantPriority orders competing parent statuses when legacy data left
// more than one live slot row on the same hour: approved > completed > pending.
func occupantPriority(s model.BookingStatus) int {
	switch s {
	case model.BookingApproved:
		return 3
	case model.BookingCompleted:
		return 2
	case model.BookingPending:
		return 1
	case model.BookingCancelled:
		return 0
	}
	return 0
}

// displayStatus maps a live parent booking status to what the board shows.
func displayStatus(s model.BookingStatus) model.SlotStatus {
	switch s {
	case model.BookingApproved, model.BookingCompleted:
		return model.SlotBooked
	case model.BookingPending:
		return model.SlotPending
	case model.BookingCancelled:
		return model.SlotAvailable
	}
	return model.SlotAvailable
}

// ResolveAvailability computes the status of all 24 hourly slots for a date.
// Runs the expiry sweeper first so lapsed holds never show as taken.
func ResolveAvailability(db *gorm.DB, date utils.CustomDate, now time.Time) ([]model.SlotView, error) {
	if _, err := SweepExpired(db, now); err != nil {
		return nil, err
	}

	cfg, err := LoadRateConfig(db)
	if err != nil {
		return nil, err
	}

	var slots []model.Slot
	if err := db.Preload("Booking").
		Where("date = ? AND status <> ?", date, model.SlotCancelled).
		Find(&slots).Error; err != nil {
		return nil, &StorageError{err}
	}

	best := make(map[int]model.BookingStatus)
	for _, s := range slots {
		ps := s.Booking.Status
		if ps == model.BookingCancelled {
			continue
		}
		if occupantPriority(ps) > occupantPriority(best[s.Hour]) {
			best[s.Hour] = ps
		}
	}

	today := utils.DateOf(now)
	views := make([]model.SlotView, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		rate, night, _ := RateFor(cfg, hour)
		status := model.SlotAvailable
		if ps, ok := best[hour]; ok {
			status = displayStatus(ps)
		}
		// The current in-progress hour is not bookable, hence <= and not <.
		if date.BeforeDay(today) || (date.SameDay(today) && hour <= now.Hour()) {
			status = model.SlotPast
		}
		views = append(views, model.SlotView{Hour: hour, Status: status, Rate: rate, IsNight: night})
	}
	return views, nil
}
