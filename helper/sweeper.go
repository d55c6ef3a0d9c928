package helper

import (
	"time"

	"ground_manager/constants"
	"ground_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it. The
// sqlite test dialector has no row locks; its single-writer model plus the
// partial unique index on active slots cover the same races there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// SweepExpired cancels every pending booking whose hold has lapsed and frees
// its slots. Idempotent; called before every availability query and
// allocation attempt so stale holds never block fresh bookings.
func SweepExpired(db *gorm.DB, now time.Time) (int64, error) {
	var released int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := lockForUpdate(tx).Model(&model.Booking{}).
			Where("status = ? AND pending_expires_at IS NOT NULL AND pending_expires_at < ?",
				model.BookingPending, now).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Model(&model.Booking{}).Where("id IN ?", ids).
			Updates(map[string]any{
				"status":             model.BookingCancelled,
				"cancel_reason":      constants.REASON_HOLD_EXPIRED,
				"pending_expires_at": nil,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Slot{}).Where("booking_id IN ?", ids).
			Update("status", model.SlotCancelled).Error; err != nil {
			return err
		}
		released = int64(len(ids))
		return nil
	})
	if err != nil {
		return 0, &StorageError{err}
	}
	return released, nil
}
