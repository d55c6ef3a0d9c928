package handler

import (
	"errors"
	"log"
	"time"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/model"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetNotifications(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	unreadOnly := c.QueryBool("unread")

	condition := database.DB.Model(&model.Notification{})
	if unreadOnly {
		condition = condition.Where("is_read = ?", false)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var notifications []model.Notification
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)
	if err := condition.Order("created_at desc").Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       notifications,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	notificationId := c.Locals("inputId").(int)

	var notification model.Notification
	if err := database.DB.First(&notification, notificationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	notification.IsRead = true
	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}

// CleanupNotifications drops read notifications older than 30 days. Wired to
// the daily scheduler in main.
func CleanupNotifications() {
	cutoff := time.Now().AddDate(0, 0, -30)
	result := database.DB.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.Notification{})
	if result.Error != nil {
		log.Printf("notification cleanup failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("notification cleanup: removed %d read notifications", result.RowsAffected)
	}
}
