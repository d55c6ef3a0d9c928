package helper

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ground_manager/constants"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// PendingHold is how long an unapproved booking keeps its slots.
const PendingHold = 30 * time.Minute

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}

// domainErr passes our typed errors through untouched and wraps anything else
// as a StorageError.
func domainErr(err error) error {
	var ve *ValidationError
	var ce *ConflictError
	var se *StateError
	var ae *AmountMismatchError
	var st *StorageError
	if errors.As(err, &ve) || errors.As(err, &ce) || errors.As(err, &se) ||
		errors.As(err, &ae) || errors.As(err, &st) {
		return err
	}
	return &StorageError{err}
}

// AllocateBooking validates the requested hours, locks matching slot rows and
// either creates customer + booking + slots in one transaction or fails with
// a conflict. No partial writes survive a failure.
func AllocateBooking(db *gorm.DB, input model.CreateBookingInput, now time.Time) (*model.Booking, error) {
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	today := utils.DateOf(now)
	if date.BeforeDay(today) {
		return nil, &ValidationError{Reason: "date is in the past"}
	}
	if len(input.Hours) == 0 {
		return nil, &ValidationError{Reason: "no hours requested"}
	}
	seen := make(map[int]bool, len(input.Hours))
	for _, h := range input.Hours {
		if h < 0 || h > 23 {
			return nil, &ValidationError{Reason: fmt.Sprintf("hour %d out of range 0-23", h)}
		}
		if seen[h] {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate hour %d", h)}
		}
		seen[h] = true
		if date.SameDay(today) && h <= now.Hour() {
			return nil, &ValidationError{Reason: fmt.Sprintf("hour %d has already passed", h)}
		}
	}
	remaining := input.TotalAmount - input.AdvanceAmount
	if remaining < 0 {
		return nil, &ValidationError{Reason: "advance exceeds total amount"}
	}

	hours := append([]int(nil), input.Hours...)
	sort.Ints(hours)

	var booking *model.Booking
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if _, err := SweepExpired(tx, now); err != nil {
			return err
		}

		cfg, err := LoadRateConfig(tx)
		if err != nil {
			return err
		}
		minAdvance := input.TotalAmount * cfg.MinAdvancePercent / 100
		if input.AdvanceAmount < minAdvance {
			return &ValidationError{Reason: fmt.Sprintf(
				"advance %.2f below required minimum %.2f (%.0f%% of total)",
				input.AdvanceAmount, minAdvance, cfg.MinAdvancePercent)}
		}

		var conflicts []int
		for _, h := range hours {
			var occupant model.Slot
			err := lockForUpdate(tx).
				Select("slots.*").
				Joins("JOIN bookings ON bookings.id = slots.booking_id").
				Where("slots.date = ? AND slots.hour = ? AND slots.status <> ? AND bookings.status <> ?",
					date, h, model.SlotCancelled, model.BookingCancelled).
				First(&occupant).Error
			if err == nil {
				conflicts = append(conflicts, h)
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if len(conflicts) > 0 {
			return &ConflictError{Hours: conflicts}
		}

		customer, err := upsertCustomer(tx, input)
		if err != nil {
			return err
		}
		ref, err := generateBookingRef(tx, date)
		if err != nil {
			return err
		}

		var b model.Booking
		if err := copier.Copy(&b, &input); err != nil {
			return err
		}
		expires := now.Add(PendingHold)
		b.BookingRef = ref
		b.CustomerId = customer.ID
		b.Date = date
		b.TotalHours = len(hours)
		b.AdvanceMethod = model.PaymentMethod(input.AdvanceMethod)
		b.AdvanceProofRef = input.ProofRef
		b.RemainingAmount = remaining
		b.Status = model.BookingPending
		b.PendingExpiresAt = &expires
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		for _, h := range hours {
			rate, night, _ := RateFor(cfg, h)
			slot := model.Slot{
				BookingId: b.ID,
				Date:      date,
				Hour:      h,
				Rate:      rate,
				IsNight:   night,
				Status:    model.SlotPending,
			}
			if err := tx.Create(&slot).Error; err != nil {
				// Race lost between the locked scan and the insert; the
				// partial unique index rejects the second writer and the
				// whole transaction rolls back.
				if isUniqueViolation(err) {
					return &ConflictError{Hours: []int{h}}
				}
				return err
			}
			b.Slots = append(b.Slots, slot)
		}

		if err := EmitNotification(tx, "booking_created",
			"New booking "+ref,
			fmt.Sprintf("%s booked %d hour(s) on %s", customer.Name, len(hours), date.String()),
			&b.ID); err != nil {
			return err
		}

		b.Customer = *customer
		booking = &b
		return nil
	})
	if txErr != nil {
		return nil, domainErr(txErr)
	}
	return booking, nil
}

// upsertCustomer matches by phone when one is given, refreshing the stored
// name; otherwise a fresh customer row is created.
func upsertCustomer(tx *gorm.DB, input model.CreateBookingInput) (*model.Customer, error) {
	var customer model.Customer
	if input.CustomerPhone != "" {
		err := tx.Where("phone = ?", input.CustomerPhone).First(&customer).Error
		if err == nil {
			updates := map[string]any{"name": input.CustomerName}
			if input.CustomerEmail != "" {
				updates["email"] = input.CustomerEmail
			}
			if err := tx.Model(&customer).Updates(updates).Error; err != nil {
				return nil, err
			}
			customer.Name = input.CustomerName
			return &customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	customer = model.Customer{
		Name:  input.CustomerName,
		Phone: input.CustomerPhone,
		Email: input.CustomerEmail,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// generateBookingRef builds a per-date sequence ref like CG-20260205-003,
// probing past collisions with cancelled history.
func generateBookingRef(tx *gorm.DB, date utils.CustomDate) (string, error) {
	var n int64
	if err := tx.Model(&model.Booking{}).Where("date = ?", date).Count(&n).Error; err != nil {
		return "", err
	}
	for i := n + 1; ; i++ {
		ref := fmt.Sprintf("CG-%s-%03d", date.Format("20060102"), i)
		var taken int64
		if err := tx.Model(&model.Booking{}).Where("booking_ref = ?", ref).Count(&taken).Error; err != nil {
			return "", err
		}
		if taken == 0 {
			return ref, nil
		}
	}
}

// ApproveBooking moves a live pending booking to approved, clears its hold
// and marks the slots booked.
func ApproveBooking(db *gorm.DB, bookingId uint, now time.Time) (*model.Booking, error) {
	var booking model.Booking
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if _, err := SweepExpired(tx, now); err != nil {
			return err
		}
		if err := lockForUpdate(tx).First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &StateError{Reason: constants.BOOKING_NOT_FOUND}
			}
			return err
		}
		if booking.Status != model.BookingPending {
			return &StateError{Reason: constants.WRONG_STATUS,
				Detail: fmt.Sprintf("booking %s is %s, expected pending", booking.BookingRef, booking.Status)}
		}
		if err := tx.Model(&booking).Updates(map[string]any{
			"status":             model.BookingApproved,
			"pending_expires_at": nil,
		}).Error; err != nil {
			return err
		}
		booking.Status = model.BookingApproved
		booking.PendingExpiresAt = nil
		if err := tx.Model(&model.Slot{}).
			Where("booking_id = ? AND status <> ?", booking.ID, model.SlotCancelled).
			Update("status", model.SlotBooked).Error; err != nil {
			return err
		}
		return EmitNotification(tx, "booking_approved",
			"Booking "+booking.BookingRef+" approved",
			fmt.Sprintf("Booking %s on %s confirmed", booking.BookingRef, booking.Date.String()),
			&booking.ID)
	})
	if txErr != nil {
		return nil, domainErr(txErr)
	}
	return &booking, nil
}

// RejectBooking cancels a pending booking (manual admin rejection).
func RejectBooking(db *gorm.DB, bookingId uint, reason string, now time.Time) (*model.Booking, error) {
	if reason == "" {
		reason = constants.REASON_ADMIN_REJECTED
	}
	return cancelBooking(db, bookingId, model.BookingPending, reason)
}

// CancelBooking cancels an approved booking.
func CancelBooking(db *gorm.DB, bookingId uint, now time.Time) (*model.Booking, error) {
	return cancelBooking(db, bookingId, model.BookingApproved, constants.REASON_ADMIN_CANCEL)
}

func cancelBooking(db *gorm.DB, bookingId uint, expect model.BookingStatus, reason string) (*model.Booking, error) {
	var booking model.Booking
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &StateError{Reason: constants.BOOKING_NOT_FOUND}
			}
			return err
		}
		if booking.Status != expect {
			return &StateError{Reason: constants.WRONG_STATUS,
				Detail: fmt.Sprintf("booking %s is %s, expected %s", booking.BookingRef, booking.Status, expect)}
		}
		if err := tx.Model(&booking).Updates(map[string]any{
			"status":             model.BookingCancelled,
			"cancel_reason":      reason,
			"pending_expires_at": nil,
		}).Error; err != nil {
			return err
		}
		booking.Status = model.BookingCancelled
		booking.CancelReason = reason
		if err := tx.Model(&model.Slot{}).Where("booking_id = ?", booking.ID).
			Update("status", model.SlotCancelled).Error; err != nil {
			return err
		}
		return EmitNotification(tx, "booking_cancelled",
			"Booking "+booking.BookingRef+" cancelled", reason, &booking.ID)
	})
	if txErr != nil {
		return nil, domainErr(txErr)
	}
	return &booking, nil
}
