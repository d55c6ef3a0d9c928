package model

type ExtraCharge struct {
	DTO
	BookingId uint    `gorm:"index" json:"bookingId"`
	Category  string  `gorm:"size:50;not null" json:"category"` // floodlights, equipment, damages...
	Amount    float64 `gorm:"not null" json:"amount"`
}

type ExtraChargeInput struct {
	Category string  `json:"category" validate:"required,max=50"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}
