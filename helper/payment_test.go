package helper

import (
	"testing"

	"ground_manager/constants"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentInput(amount float64) model.CompletePaymentInput {
	return model.CompletePaymentInput{
		PaymentMethod:  "cash",
		Amount:         amount,
		ExtraCharges:   []model.ExtraChargeInput{{Category: "floodlights", Amount: 500}},
		DiscountAmount: 200,
	}
}

func TestValidatePaymentAmounts(t *testing.T) {
	// remaining 2000 + extras 500 - discount 200 = expected 2300
	extraTotal, err := ValidatePaymentAmounts(2000, paymentInput(2300))
	require.NoError(t, err)
	assert.Equal(t, 500.0, extraTotal)

	// sub-unit rounding noise is tolerated
	_, err = ValidatePaymentAmounts(2000, paymentInput(2300.5))
	require.NoError(t, err)

	// a full unit off is rejected, with the breakdown attached
	_, err = ValidatePaymentAmounts(2000, paymentInput(2301))
	var ae *AmountMismatchError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 2300.0, ae.Expected)
	assert.Equal(t, 2301.0, ae.Provided)
	assert.Equal(t, 500.0, ae.ExtraTotal)
	assert.Equal(t, 200.0, ae.Discount)

	// paying the pre-discount remaining is a mismatch too
	_, err = ValidatePaymentAmounts(2000, paymentInput(2250))
	require.ErrorAs(t, err, &ae)
}

func TestValidatePaymentAmountsDiscountBounds(t *testing.T) {
	input := paymentInput(0)
	input.DiscountAmount = -1
	_, err := ValidatePaymentAmounts(2000, input)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// discount above remaining + extras is rejected
	input.DiscountAmount = 2501
	_, err = ValidatePaymentAmounts(2000, input)
	require.ErrorAs(t, err, &ve)

	// discount may wipe the whole payable amount
	input.DiscountAmount = 2500
	input.Amount = 0
	_, err = ValidatePaymentAmounts(2000, input)
	require.NoError(t, err)
}

func TestResolveSplit(t *testing.T) {
	t.Run("both portions must add up", func(t *testing.T) {
		input := model.CompletePaymentInput{
			PaymentMethod: "split", Amount: 2300,
			CashAmount: utils.Ptr(1000.0), OnlineAmount: utils.Ptr(1300.0),
			OnlineMethod: "upi",
		}
		cash, online, err := ResolveSplit(input)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, cash)
		assert.Equal(t, 1300.0, online)

		input.OnlineAmount = utils.Ptr(1200.0)
		_, _, err = ResolveSplit(input)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("missing portion is derived", func(t *testing.T) {
		input := model.CompletePaymentInput{
			PaymentMethod: "split", Amount: 2300,
			CashAmount:   utils.Ptr(800.0),
			OnlineMethod: "card",
		}
		cash, online, err := ResolveSplit(input)
		require.NoError(t, err)
		assert.Equal(t, 800.0, cash)
		assert.Equal(t, 1500.0, online)
	})

	t.Run("single method takes the whole amount", func(t *testing.T) {
		cash, online, err := ResolveSplit(model.CompletePaymentInput{PaymentMethod: "cash", Amount: 2300})
		require.NoError(t, err)
		assert.Equal(t, 2300.0, cash)
		assert.Equal(t, 0.0, online)

		cash, online, err = ResolveSplit(model.CompletePaymentInput{
			PaymentMethod: "online", Amount: 2300, OnlineMethod: "bank_transfer"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, cash)
		assert.Equal(t, 2300.0, online)
	})

	t.Run("split without any portion is rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(model.CompletePaymentInput{PaymentMethod: "split", Amount: 2300})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("negative derived portion is rejected", func(t *testing.T) {
		input := model.CompletePaymentInput{
			PaymentMethod: "split", Amount: 2300,
			CashAmount:   utils.Ptr(2500.0),
			OnlineMethod: "upi",
		}
		_, _, err := ResolveSplit(input)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("online portion needs a sub-method", func(t *testing.T) {
		_, _, err := ResolveSplit(model.CompletePaymentInput{PaymentMethod: "online", Amount: 2300})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Reason, constants.MISSING_ONLINE_METHOD)
	})
}

func TestCompletePayment(t *testing.T) {
	db := testDB(t)
	date := utils.NewDate(2026, 9, 12)
	booking := seedBooking(t, db, date, []int{14, 15}, model.BookingApproved, nil)

	// remaining 1400 + extras 500 - discount 200 = 1700
	input := model.CompletePaymentInput{
		PaymentMethod:  "split",
		Amount:         1700,
		ExtraCharges:   []model.ExtraChargeInput{{Category: "floodlights", Amount: 500}},
		DiscountAmount: 200,
		CashAmount:     utils.Ptr(700.0),
		OnlineAmount:   utils.Ptr(1000.0),
		OnlineMethod:   "upi",
		ProofRef:       "proof/txn-881",
	}
	result, err := CompletePayment(db, booking.ID, input, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, booking.BookingRef, result.BookingRef)
	assert.Equal(t, 2300.0, result.NewTotal) // 2000 + 500 - 200
	assert.Equal(t, 1700.0, result.PaidAmount)
	assert.Equal(t, 700.0, result.CashAmount)
	assert.Equal(t, 1000.0, result.OnlineAmount)

	var stored model.Booking
	require.NoError(t, db.Preload("Slots").Preload("ExtraCharges").First(&stored, booking.ID).Error)
	assert.Equal(t, model.BookingCompleted, stored.Status)
	assert.Equal(t, 0.0, stored.RemainingAmount)
	assert.Equal(t, 1700.0, stored.RemainingPaidAmount)
	assert.Equal(t, 2300.0, stored.TotalAmount)
	assert.Equal(t, model.OnlineUPI, stored.OnlineMethod)
	require.Len(t, stored.ExtraCharges, 1)
	assert.Equal(t, "floodlights", stored.ExtraCharges[0].Category)
	for _, s := range stored.Slots {
		assert.Equal(t, model.SlotCompleted, s.Status)
	}

	var note model.Notification
	require.NoError(t, db.Where("type = ?", "payment_completed").First(&note).Error)
}

func TestCompletePaymentFullDiscount(t *testing.T) {
	db := testDB(t)
	booking := seedBooking(t, db, utils.NewDate(2026, 9, 12), []int{8}, model.BookingApproved, nil)

	// discount wipes the whole remaining 700; nothing changes hands
	input := model.CompletePaymentInput{
		PaymentMethod:  "cash",
		Amount:         0,
		DiscountAmount: 700,
	}
	result, err := CompletePayment(db, booking.ID, input, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PaidAmount)
	assert.Equal(t, 300.0, result.NewTotal) // 1000 - 700

	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, model.BookingCompleted, stored.Status)
	assert.Equal(t, 0.0, stored.RemainingAmount)
	assert.Equal(t, 700.0, stored.DiscountAmount)
}

func TestCompletePaymentRejectsWrongAmountAtomically(t *testing.T) {
	db := testDB(t)
	date := utils.NewDate(2026, 9, 12)
	booking := seedBooking(t, db, date, []int{14, 15}, model.BookingApproved, nil)

	input := model.CompletePaymentInput{
		PaymentMethod:  "cash",
		Amount:         1701, // expected 1700
		ExtraCharges:   []model.ExtraChargeInput{{Category: "floodlights", Amount: 500}},
		DiscountAmount: 200,
	}
	_, err := CompletePayment(db, booking.ID, input, fixedNow)
	var ae *AmountMismatchError
	require.ErrorAs(t, err, &ae)

	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, model.BookingApproved, stored.Status)
	assert.Equal(t, 1400.0, stored.RemainingAmount)

	var extras int64
	db.Model(&model.ExtraCharge{}).Where("booking_id = ?", booking.ID).Count(&extras)
	assert.Zero(t, extras)
}

func TestCompletePaymentStateGuards(t *testing.T) {
	db := testDB(t)
	date := utils.NewDate(2026, 9, 12)

	pending := seedBooking(t, db, date, []int{8}, model.BookingPending, nil)
	_, err := CompletePayment(db, pending.ID, model.CompletePaymentInput{PaymentMethod: "cash", Amount: 700}, fixedNow)
	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, constants.WRONG_STATUS, se.Reason)

	_, err = CompletePayment(db, 9999, model.CompletePaymentInput{PaymentMethod: "cash", Amount: 700}, fixedNow)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, constants.BOOKING_NOT_FOUND, se.Reason)

	settled := seedBooking(t, db, utils.NewDate(2026, 9, 13), []int{8}, model.BookingApproved, nil)
	require.NoError(t, db.Model(settled).Update("remaining_amount", 0).Error)
	_, err = CompletePayment(db, settled.ID, model.CompletePaymentInput{PaymentMethod: "cash", Amount: 100}, fixedNow)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, constants.NOTHING_DUE, se.Reason)
}
