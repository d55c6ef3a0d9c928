package helper

import (
	"errors"
	"fmt"
	"math"
	"time"

	"ground_manager/constants"
	"ground_manager/model"

	"gorm.io/gorm"
)

// AmountTolerance absorbs sub-unit rounding noise; a full currency unit of
// disagreement is rejected.
const AmountTolerance = 1.0

func SumExtraCharges(extras []model.ExtraChargeInput) float64 {
	var total float64
	for _, e := range extras {
		total += e.Amount
	}
	return total
}

// ExpectedPayment is the discount-adjusted final figure the admin must
// collect: remaining due plus extra charges minus discount. Validation is
// against this figure, never against the pre-discount remaining.
func ExpectedPayment(remainingDue, extraTotal, discount float64) float64 {
	return remainingDue + extraTotal - discount
}

// ValidatePaymentAmounts checks discount bounds and the proposed amount
// against the expected figure. Returns the extra-charge total.
func ValidatePaymentAmounts(remainingDue float64, input model.CompletePaymentInput) (float64, error) {
	extraTotal := SumExtraCharges(input.ExtraCharges)
	finalPayable := remainingDue + extraTotal
	if input.DiscountAmount < 0 || input.DiscountAmount > finalPayable {
		return 0, &ValidationError{Reason: fmt.Sprintf(
			"%s: discount %.2f outside 0-%.2f", constants.INVALID_DISCOUNT, input.DiscountAmount, finalPayable)}
	}
	expected := ExpectedPayment(remainingDue, extraTotal, input.DiscountAmount)
	if math.Abs(input.Amount-expected) >= AmountTolerance {
		return 0, &AmountMismatchError{
			RemainingDue: remainingDue,
			ExtraTotal:   extraTotal,
			Discount:     input.DiscountAmount,
			Expected:     expected,
			Provided:     input.Amount,
		}
	}
	return extraTotal, nil
}

// ResolveSplit turns the optional cash/online portions into concrete values.
// Both given: they must sum to the proposed amount. One given: the other is
// derived. Neither: the whole amount goes to the stated method. Any online
// portion requires an online sub-method.
func ResolveSplit(input model.CompletePaymentInput) (cash, online float64, err error) {
	switch {
	case input.CashAmount != nil && input.OnlineAmount != nil:
		cash, online = *input.CashAmount, *input.OnlineAmount
		if math.Abs(cash+online-input.Amount) >= AmountTolerance {
			return 0, 0, &ValidationError{Reason: fmt.Sprintf(
				"%s: cash %.2f + online %.2f does not equal %.2f",
				constants.SPLIT_MISMATCH, cash, online, input.Amount)}
		}
	case input.CashAmount != nil:
		cash = *input.CashAmount
		online = input.Amount - cash
	case input.OnlineAmount != nil:
		online = *input.OnlineAmount
		cash = input.Amount - online
	default:
		switch model.PaymentMethod(input.PaymentMethod) {
		case model.PayCash:
			cash = input.Amount
		case model.PayOnline:
			online = input.Amount
		case model.PaySplit:
			return 0, 0, &ValidationError{Reason: constants.SPLIT_MISMATCH + ": split payment needs cash or online portion"}
		}
	}
	if cash < 0 || online < 0 {
		return 0, 0, &ValidationError{Reason: fmt.Sprintf(
			"%s: derived portion is negative (cash %.2f, online %.2f)", constants.SPLIT_MISMATCH, cash, online)}
	}
	if online > 0 && input.OnlineMethod == "" {
		return 0, 0, &ValidationError{Reason: constants.MISSING_ONLINE_METHOD}
	}
	return cash, online, nil
}

// CompletePayment reconciles and finalizes the remaining payment of an
// approved booking in one transaction: extra charges appended, totals
// adjusted by extras minus discount, split recorded, slots and booking marked
// completed, notification emitted.
func CompletePayment(db *gorm.DB, bookingId uint, input model.CompletePaymentInput, now time.Time) (*model.PaymentResult, error) {
	var result model.PaymentResult
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := lockForUpdate(tx).First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &StateError{Reason: constants.BOOKING_NOT_FOUND}
			}
			return err
		}
		if booking.Status != model.BookingApproved {
			return &StateError{Reason: constants.WRONG_STATUS,
				Detail: fmt.Sprintf("booking %s is %s, expected approved", booking.BookingRef, booking.Status)}
		}
		if booking.RemainingAmount <= 0 {
			return &StateError{Reason: constants.NOTHING_DUE,
				Detail: fmt.Sprintf("booking %s has no remaining balance", booking.BookingRef)}
		}

		extraTotal, err := ValidatePaymentAmounts(booking.RemainingAmount, input)
		if err != nil {
			return err
		}
		cash, online, err := ResolveSplit(input)
		if err != nil {
			return err
		}

		for _, e := range input.ExtraCharges {
			charge := model.ExtraCharge{BookingId: booking.ID, Category: e.Category, Amount: e.Amount}
			if err := tx.Create(&charge).Error; err != nil {
				return err
			}
		}

		newTotal := booking.TotalAmount + extraTotal - input.DiscountAmount
		updates := map[string]any{
			"remaining_paid_amount": booking.RemainingPaidAmount + input.Amount,
			"remaining_amount":      0,
			"remaining_method":      model.PaymentMethod(input.PaymentMethod),
			"remaining_proof_ref":   input.ProofRef,
			"discount_amount":       input.DiscountAmount,
			"total_amount":          newTotal,
			"cash_amount":           cash,
			"online_amount":         online,
			"status":                model.BookingCompleted,
		}
		if online > 0 {
			updates["online_method"] = model.OnlineMethod(input.OnlineMethod)
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Slot{}).
			Where("booking_id = ? AND status <> ?", booking.ID, model.SlotCancelled).
			Update("status", model.SlotCompleted).Error; err != nil {
			return err
		}
		if err := EmitNotification(tx, "payment_completed",
			"Payment completed for "+booking.BookingRef,
			fmt.Sprintf("Collected %.2f (cash %.2f / online %.2f), new total %.2f",
				input.Amount, cash, online, newTotal),
			&booking.ID); err != nil {
			return err
		}

		result = model.PaymentResult{
			BookingRef:   booking.BookingRef,
			NewTotal:     newTotal,
			PaidAmount:   input.Amount,
			ExtraTotal:   extraTotal,
			Discount:     input.DiscountAmount,
			CashAmount:   cash,
			OnlineAmount: online,
		}
		return nil
	})
	if txErr != nil {
		return nil, domainErr(txErr)
	}
	return &result, nil
}
