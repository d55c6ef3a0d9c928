package model

// Notification is a record only; delivery (push/email) is a separate concern
// picked up by whoever consumes the table.
type Notification struct {
	DTO
	Type      string `gorm:"size:30;not null" json:"type"` // booking_created, booking_approved, payment_completed, booking_cancelled
	Title     string `gorm:"not null" json:"title"`
	Message   string `json:"message"`
	BookingId *uint  `gorm:"index" json:"bookingId,omitempty"`
	IsRead    bool   `gorm:"default:false" json:"isRead"`
}
