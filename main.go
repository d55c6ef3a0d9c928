package main

import (
	"log"
	"time"

	"ground_manager/database"
	"ground_manager/handler"
	"ground_manager/helper"
	"ground_manager/router"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	// Backstop sweep: expiry is also applied lazily on every read/allocate,
	// this keeps the board honest when traffic is idle.
	c := cron.New()
	if _, err := c.AddFunc("*/5 * * * *", func() {
		released, err := helper.SweepExpired(database.DB, time.Now())
		if err != nil {
			log.Printf("sweep: %v", err)
			return
		}
		if released > 0 {
			log.Printf("sweep: released %d expired booking(s)", released)
		}
	}); err != nil {
		log.Fatal(err)
	}
	c.Start()
	defer c.Stop()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	if _, err := scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(handler.CleanupNotifications),
	); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()
	defer scheduler.Shutdown()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
