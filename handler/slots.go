package handler

import (
	"errors"
	"time"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAvailability returns the 24-slot board for a date (default today). The
// expiry sweeper runs inside the resolver, so lapsed holds never show here.
func GetAvailability(c *fiber.Ctx) error {
	now := time.Now()
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = utils.DateOf(now).String()
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	views, err := helper.ResolveAvailability(database.DB, date, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":  date.String(),
		"slots": views,
	})
}

// SweepNow lets an admin force a sweep; normally the lazy invocations and the
// cron backstop make this unnecessary.
func SweepNow(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	released, err := helper.SweepExpired(database.DB, time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"released": released})
}
