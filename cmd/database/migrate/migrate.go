package migration

import (
	"fmt"
	"log"

	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Profile{}); err != nil {
		log.Fatalf("Error migrating profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodPost{}); err != nil {
		log.Fatalf("Error migrating food post database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reservation{}); err != nil {
		log.Fatalf("Error migrating reservation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reward{}); err != nil {
		log.Fatalf("Error migrating reward database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
