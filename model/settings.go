package model

// GroundSettings is a single-row table holding the rate configuration. It is
// loaded per request and passed into the rate calculator, never read as
// ambient global state.
type GroundSettings struct {
	DTO
	DayRate           float64 `gorm:"not null" json:"dayRate"`
	NightRate         float64 `gorm:"not null" json:"nightRate"`
	NightStartHour    int     `gorm:"not null" json:"nightStartHour"` // window may wrap past midnight
	NightEndHour      int     `gorm:"not null" json:"nightEndHour"`
	MinAdvancePercent float64 `gorm:"not null" json:"minAdvancePercent"`
}

type UpdateSettingsInput struct {
	DayRate           float64 `json:"dayRate" validate:"required,gt=0"`
	NightRate         float64 `json:"nightRate" validate:"required,gt=0"`
	NightStartHour    int     `json:"nightStartHour" validate:"gte=0,lte=23"`
	NightEndHour      int     `json:"nightEndHour" validate:"gte=0,lte=23"`
	MinAdvancePercent float64 `json:"minAdvancePercent" validate:"gte=0,lte=100"`
}
