package initializers

import (
	"log"

	"gorm.io/gorm"

	"github.com/njorogedev/bistro-api/models"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Manager{}, &models.MenuRevision{})
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
