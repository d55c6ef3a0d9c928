package model

import "ground_manager/utils"

// Slot is one bookable hour of one calendar day. At most one slot row per
// (date, hour) may reference a non-cancelled booking; a partial unique index
// created in database.Migrate enforces that alongside the allocator's locked
// pre-check.
type Slot struct {
	DTO
	BookingId uint    `gorm:"index" json:"bookingId"`
	Booking   Booking `json:"-"`

	Date    utils.CustomDate `gorm:"type:date;index:idx_slot_date_hour" json:"date"`
	Hour    int              `gorm:"index:idx_slot_date_hour" json:"hour"`
	Rate    float64          `json:"rate"`
	IsNight bool             `json:"isNight"`
	Status  SlotStatus       `gorm:"size:20;index" json:"status"`
}

// SlotView is one entry of the public availability board.
type SlotView struct {
	Hour    int        `json:"hour"`
	Status  SlotStatus `json:"status"`
	Rate    float64    `json:"rate"`
	IsNight bool       `json:"isNight"`
}
