package router

import (
	"ground_manager/handler"
	"ground_manager/middleware"
	"ground_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	// Public surface: availability board, booking creation and ref lookup.
	slots := v1.Group("/slots", logger.New())
	slots.Get("/", middleware.OptionalJWT(), handler.GetAvailability)
	slots.Get("/live/:date", websocket.New(handler.SlotWebsocket))

	booking := v1.Group("/bookings", logger.New())
	booking.Post("/", middleware.OptionalJWT(), validate.CreateBooking(), handler.CreateBooking)

	// Admin surface.
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/id/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Patch("/:bookingId/approve", middleware.Protected(), validate.GetById("bookingId"), handler.ApproveBooking)
	booking.Patch("/:bookingId/reject", middleware.Protected(), validate.GetById("bookingId"), validate.RejectBooking(), handler.RejectBooking)
	booking.Patch("/:bookingId/cancel", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Post("/:bookingId/complete-payment", middleware.Protected(), validate.GetById("bookingId"), validate.CompletePayment(), handler.CompletePayment)

	// Public ref lookup goes last so the static admin segments win.
	booking.Get("/:ref", handler.GetBookingByRef)

	v1.Post("/sweep", middleware.Protected(), handler.SweepNow)

	customer := v1.Group("/customers", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)

	notification := v1.Group("/notifications", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/", middleware.Protected(), handler.GetSettings)
	settings.Put("/", middleware.Protected(), validate.UpdateSettings(), handler.UpdateSettings)

	v1.Get("/statistic", middleware.Protected(), handler.GetAdminStats)
	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Get("/payment-proof", middleware.Protected(), handler.GetProofAsset)
}
