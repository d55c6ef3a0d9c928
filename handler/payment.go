package handler

import (
	"errors"
	"time"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CompletePayment settles the remaining balance of an approved booking,
// including extra charges, discount and cash/online split.
func CompletePayment(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CompletePaymentInput)

	result, err := helper.CompletePayment(database.DB, uint(bookingId), input, time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err == nil {
		PublishSlotUpdate(booking.Date.String())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
