package validate

import (
	"ground_manager/constants"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CompletePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CompletePaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
