package database

import (
	"fmt"
	"strconv"

	"ground_manager/config"
	"ground_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	port, err := strconv.ParseUint(config.Config("DB_PORT"), 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic(err)
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate creates the schema. Shared with the test suite, which runs it
// against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Customer{},
		&model.GroundSettings{},
		&model.Booking{},
		&model.Slot{},
		&model.ExtraCharge{},
		&model.Notification{},
	); err != nil {
		return err
	}

	// Double-booking guard: among non-cancelled occupants there can be at
	// most one slot row per (date, hour). The allocator also pre-checks under
	// row locks, but this index is what makes the race lose cleanly.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot_date_hour
		ON slots (date, hour) WHERE status <> 'cancelled'`).Error
}
