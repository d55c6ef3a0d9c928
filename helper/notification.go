package helper

import (
	"ground_manager/model"

	"gorm.io/gorm"
)

// EmitNotification writes a notification record inside the caller's
// transaction. Delivery is someone else's job; the record is the contract.
func EmitNotification(tx *gorm.DB, ntype, title, message string, bookingId *uint) error {
	n := model.Notification{
		Type:      ntype,
		Title:     title,
		Message:   message,
		BookingId: bookingId,
	}
	return tx.Create(&n).Error
}
