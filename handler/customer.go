package handler

import (
	"errors"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCustomers(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filter := new(model.FilterCustomerInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Customer{})
	if filter.SearchKey != "" {
		condition = condition.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Phone != "" {
		condition = condition.Where("phone = ?", filter.Phone)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var customers model.Customers
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)
	if err := condition.Order("created_at desc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetCustomerById returns the customer plus their booking history.
func GetCustomerById(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	if err := database.DB.Preload("Slots").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customer": customer,
		"bookings": bookings,
	})
}
