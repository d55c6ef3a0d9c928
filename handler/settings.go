package handler

import (
	"errors"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	cfg, err := helper.LoadRateConfig(database.DB)
	if err != nil {
		return respondDomainError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cfg)
}

// UpdateSettings rewrites the rate configuration. Existing bookings keep
// their stored per-slot rates; only new calculations see the change.
func UpdateSettings(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	input := c.Locals("input").(model.UpdateSettingsInput)

	cfg, err := helper.LoadRateConfig(database.DB)
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := database.DB.Model(&cfg).Updates(map[string]any{
		"day_rate":            input.DayRate,
		"night_rate":          input.NightRate,
		"night_start_hour":    input.NightStartHour,
		"night_end_hour":      input.NightEndHour,
		"min_advance_percent": input.MinAdvancePercent,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cfg.DayRate = input.DayRate
	cfg.NightRate = input.NightRate
	cfg.NightStartHour = input.NightStartHour
	cfg.NightEndHour = input.NightEndHour
	cfg.MinAdvancePercent = input.MinAdvancePercent
	return utils.SuccessResponse(c, fiber.StatusOK, cfg)
}
