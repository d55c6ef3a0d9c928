package database

import (
	"log"

	"ground_manager/constants"
	"ground_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "Administration", Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// Default rates: day 1000/hr, night 1500/hr, night window 17:00-07:00.
	settings := model.GroundSettings{
		DayRate:           1000,
		NightRate:         1500,
		NightStartHour:    17,
		NightEndHour:      7,
		MinAdvancePercent: 30,
	}
	var count int64
	db.Model(&model.GroundSettings{}).Count(&count)
	if count == 0 {
		if err := db.Create(&settings).Error; err != nil {
			log.Println("failed to seed ground settings:", err)
		}
	}
}
