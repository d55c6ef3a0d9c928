package model

import (
	"time"

	"ground_manager/utils"
)

type Booking struct {
	DTO
	BookingRef string   `gorm:"unique;size:20" json:"bookingRef"` // e.g. CG-20260205-003
	CustomerId uint     `json:"customerId"`
	Customer   Customer `json:"customer"`

	Date       utils.CustomDate `gorm:"type:date;index" json:"date"`
	TotalHours int              `json:"totalHours"`

	TotalAmount     float64       `json:"totalAmount"`
	AdvanceAmount   float64       `json:"advanceAmount"`
	AdvanceMethod   PaymentMethod `gorm:"size:10" json:"advanceMethod"`
	AdvanceProofRef string        `json:"advanceProofRef,omitempty"`

	// RemainingAmount is the balance still due; RemainingPaidAmount is what
	// has actually been collected against it at completion.
	RemainingAmount     float64       `json:"remainingAmount"`
	RemainingPaidAmount float64       `json:"remainingPaidAmount"`
	RemainingMethod     PaymentMethod `gorm:"size:10" json:"remainingMethod,omitempty"`
	RemainingProofRef   string        `json:"remainingProofRef,omitempty"`

	CashAmount   *float64     `json:"cashAmount,omitempty"`
	OnlineAmount *float64     `json:"onlineAmount,omitempty"`
	OnlineMethod OnlineMethod `gorm:"size:20" json:"onlineMethod,omitempty"`

	DiscountAmount float64 `json:"discountAmount"`

	Status           BookingStatus `gorm:"size:20;index" json:"status"`
	PendingExpiresAt *time.Time    `json:"pendingExpiresAt,omitempty"`
	CancelReason     string        `json:"cancelReason,omitempty"`
	Notes            string        `json:"notes,omitempty"`

	Slots        []Slot        `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"slots,omitempty"`
	ExtraCharges []ExtraCharge `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"extraCharges,omitempty"`
}

type CreateBookingInput struct {
	CustomerName  string  `json:"customerName" validate:"required"`
	CustomerPhone string  `json:"customerPhone" validate:"omitempty,min=7,max=15"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours         []int   `json:"hours" validate:"required,min=1,dive,gte=0,lte=23"`
	TotalAmount   float64 `json:"totalAmount" validate:"required,gt=0"`
	AdvanceAmount float64 `json:"advanceAmount" validate:"gte=0"`
	AdvanceMethod string  `json:"advanceMethod" validate:"required,oneof=cash online"`
	ProofRef      string  `json:"proofRef" validate:"omitempty"`
	Notes         string  `json:"notes" validate:"omitempty,max=500"`
}

type FilterBookingInput struct {
	Pagination
	Status string `json:"status" validate:"omitempty,oneof=pending approved completed cancelled"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Phone  string `json:"phone"`
}

type RejectBookingInput struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}
