package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking is the public entry point: allocate slots, hold them for 30
// minutes pending admin approval.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	booking, err := helper.AllocateBooking(database.DB, input, time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}

	PublishSlotUpdate(booking.Date.String())
	if booking.Customer.Email != "" {
		utils.SendBookingEmail(booking.Customer.Email,
			"Booking request received - "+booking.BookingRef,
			bookingEmailData(booking))
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingRef":       booking.BookingRef,
		"bookingId":        booking.ID,
		"status":           booking.Status,
		"pendingExpiresAt": booking.PendingExpiresAt,
		"booking":          booking,
	})
}

func bookingEmailData(b *model.Booking) utils.BookingEmailData {
	hours := make([]string, len(b.Slots))
	for i, s := range b.Slots {
		hours[i] = fmt.Sprintf("%02d:00", s.Hour)
	}
	return utils.BookingEmailData{
		BookingRef:    b.BookingRef,
		CustomerName:  b.Customer.Name,
		Date:          b.Date.String(),
		Hours:         strings.Join(hours, ", "),
		TotalAmount:   b.TotalAmount,
		AdvanceAmount: b.AdvanceAmount,
		Status:        string(b.Status),
	}
}

// GetBookingByRef is the public lookup a customer uses with the ref from
// their confirmation.
func GetBookingByRef(c *fiber.Ctx) error {
	ref := c.Params("ref")
	var booking model.Booking
	if err := database.DB.Preload("Customer").Preload("Slots").Preload("ExtraCharges").
		Where("booking_ref = ?", ref).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetBookings(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filter := new(model.FilterBookingInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Booking{}).Preload("Customer").Preload("Slots")
	if filter.Status != "" {
		condition = condition.Where("bookings.status = ?", filter.Status)
	}
	if filter.Date != "" {
		condition = condition.Where("bookings.date = ?", filter.Date)
	}
	if filter.Phone != "" {
		condition = condition.Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("customers.phone = ?", filter.Phone)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)
	if err := condition.Order("bookings.created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := database.DB.Preload("Customer").Preload("Slots").Preload("ExtraCharges").
		First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func ApproveBooking(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	bookingId := c.Locals("inputId").(int)

	booking, err := helper.ApproveBooking(database.DB, uint(bookingId), time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}

	PublishSlotUpdate(booking.Date.String())
	var customer model.Customer
	if err := database.DB.First(&customer, booking.CustomerId).Error; err == nil && customer.Email != "" {
		booking.Customer = customer
		database.DB.Where("booking_id = ?", booking.ID).Find(&booking.Slots)
		utils.SendBookingEmail(customer.Email,
			"Booking confirmed - "+booking.BookingRef,
			bookingEmailData(booking))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func RejectBooking(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.RejectBookingInput)

	booking, err := helper.RejectBooking(database.DB, uint(bookingId), input.Reason, time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}
	PublishSlotUpdate(booking.Date.String())
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	bookingId := c.Locals("inputId").(int)

	booking, err := helper.CancelBooking(database.DB, uint(bookingId), time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}
	PublishSlotUpdate(booking.Date.String())
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
