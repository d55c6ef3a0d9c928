package model

type CompletePaymentInput struct {
	PaymentMethod  string             `json:"paymentMethod" validate:"required,oneof=cash online split"`
	Amount         float64            `json:"amount" validate:"gte=0"`
	ExtraCharges   []ExtraChargeInput `json:"extraCharges" validate:"omitempty,dive"`
	DiscountAmount float64            `json:"discountAmount" validate:"gte=0"`
	CashAmount     *float64           `json:"cashAmount" validate:"omitempty,gte=0"`
	OnlineAmount   *float64           `json:"onlineAmount" validate:"omitempty,gte=0"`
	OnlineMethod   string             `json:"onlineMethod" validate:"omitempty,oneof=upi bank_transfer card"`
	ProofRef       string             `json:"proofRef"`
}

// PaymentResult is returned to the admin after a successful completion.
type PaymentResult struct {
	BookingRef   string  `json:"bookingRef"`
	NewTotal     float64 `json:"newTotal"`
	PaidAmount   float64 `json:"paidAmount"`
	ExtraTotal   float64 `json:"extraTotal"`
	Discount     float64 `json:"discount"`
	CashAmount   float64 `json:"cashAmount"`
	OnlineAmount float64 `json:"onlineAmount"`
}
