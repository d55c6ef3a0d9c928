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

// GetAdminStats feeds the dashboard: today's board occupancy, pending queue
// and collected revenue for the current month.
func GetAdminStats(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	now := time.Now()
	today := utils.DateOf(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	db := database.DB

	var todayBookings int64
	db.Model(&model.Booking{}).
		Where("date = ? AND status <> ?", today, model.BookingCancelled).
		Count(&todayBookings)

	var pendingCount int64
	db.Model(&model.Booking{}).
		Where("status = ?", model.BookingPending).
		Count(&pendingCount)

	var occupiedToday int64
	db.Model(&model.Slot{}).
		Joins("JOIN bookings ON bookings.id = slots.booking_id").
		Where("slots.date = ? AND slots.status <> ? AND bookings.status <> ?",
			today, model.SlotCancelled, model.BookingCancelled).
		Count(&occupiedToday)

	type revenueRow struct {
		Collected float64
		Advances  float64
	}
	var month revenueRow
	db.Model(&model.Booking{}).
		Select("COALESCE(SUM(remaining_paid_amount),0) AS collected, COALESCE(SUM(advance_amount),0) AS advances").
		Where("status = ? AND updated_at >= ?", model.BookingCompleted, monthStart).
		Scan(&month)

	var monthExtras float64
	db.Model(&model.ExtraCharge{}).
		Select("COALESCE(SUM(extra_charges.amount),0)").
		Joins("JOIN bookings ON bookings.id = extra_charges.booking_id").
		Where("bookings.status = ? AND bookings.updated_at >= ?", model.BookingCompleted, monthStart).
		Scan(&monthExtras)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":            today.String(),
		"todayBookings":   todayBookings,
		"pendingBookings": pendingCount,
		"todayOccupied":   occupiedToday,
		"todayOccupancy":  float64(occupiedToday) / float64(helper.HoursPerDay),
		"monthCollected":  month.Collected + month.Advances,
		"monthExtraTotal": monthExtras,
	})
}
