package handler

import (
	"errors"

	"ground_manager/constants"
	"ground_manager/helper"

	"github.com/gofiber/fiber/v2"
)

// respondDomainError maps the typed domain errors onto HTTP responses,
// carrying the structured data the caller needs to resolve the failure.
func respondDomainError(c *fiber.Ctx, err error) error {
	var ve *helper.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": constants.ERROR_INPUT,
			"error":   ve.Reason,
		})
	}
	var ce *helper.ConflictError
	if errors.As(err, &ce) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":          constants.SLOT_CONFLICT,
			"error":            ce.Error(),
			"conflictingSlots": ce.Hours,
			"retryable":        true,
		})
	}
	var se *helper.StateError
	if errors.As(err, &se) {
		status := fiber.StatusConflict
		if se.Reason == constants.BOOKING_NOT_FOUND {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"message": se.Reason,
			"error":   se.Detail,
		})
	}
	var ae *helper.AmountMismatchError
	if errors.As(err, &ae) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": constants.AMOUNT_MISMATCH,
			"error":   ae.Error(),
			"breakdown": fiber.Map{
				"remainingDue": ae.RemainingDue,
				"extraTotal":   ae.ExtraTotal,
				"discount":     ae.Discount,
				"expected":     ae.Expected,
				"provided":     ae.Provided,
			},
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": constants.ERROR_INTERNAL_ERROR,
		"error":   err.Error(),
	})
}
