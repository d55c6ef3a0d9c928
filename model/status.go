package model

// Booking and slot lifecycles are closed sets. Everything that switches on
// them must handle every member so a new status cannot slip through as a
// bare string.

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotBooked    SlotStatus = "booked"
	SlotCompleted SlotStatus = "completed"
	SlotCancelled SlotStatus = "cancelled"
	SlotPast      SlotStatus = "past"
)

func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotPending, SlotBooked, SlotCompleted, SlotCancelled, SlotPast:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayOnline PaymentMethod = "online"
	PaySplit  PaymentMethod = "split"
)

type OnlineMethod string

const (
	OnlineUPI  OnlineMethod = "upi"
	OnlineBank OnlineMethod = "bank_transfer"
	OnlineCard OnlineMethod = "card"
)
