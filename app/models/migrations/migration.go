package migrations

import (
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Product{}, "Colors", &models.ProductColor{}); err != nil {
		return fmt.Errorf("setup ProductColor join table: %w", err)
	}

	return db.AutoMigrate(&models.ProductType{}, &models.Color{}, &models.Product{}, &models.ProductColor{})
}
