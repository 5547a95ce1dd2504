package seeders

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Rakhulsr/go-catalog/app/db/fakers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

var ProductTypes = []models.ProductType{
	{ID: 1, Name: "Sofa"},
	{ID: 2, Name: "Chair"},
	{ID: 3, Name: "Table"},
	{ID: 4, Name: "Bed"},
	{ID: 5, Name: "Shelf"},
}

var Colors = []models.Color{
	{ID: 1, Name: "Blue", Hex: "#0000FF"},
	{ID: 2, Name: "Red", Hex: "#FF0000"},
	{ID: 3, Name: "Green", Hex: "#008000"},
	{ID: 4, Name: "Black", Hex: "#000000"},
	{ID: 5, Name: "White", Hex: "#FFFFFF"},
	{ID: 6, Name: "Beige", Hex: "#F5F5DC"},
}

// DBSeed inserts the reference data, skipping rows that already exist, and
// then creates the requested number of fake products.
func DBSeed(ctx context.Context, db *gorm.DB, products int, logger *slog.Logger) error {
	for _, pt := range ProductTypes {
		if err := db.WithContext(ctx).FirstOrCreate(&pt, models.ProductType{ID: pt.ID}).Error; err != nil {
			return fmt.Errorf("seed product type %q: %w", pt.Name, err)
		}
	}
	for _, c := range Colors {
		if err := db.WithContext(ctx).FirstOrCreate(&c, models.Color{ID: c.ID}).Error; err != nil {
			return fmt.Errorf("seed color %q: %w", c.Name, err)
		}
	}
	logger.InfoContext(ctx, "Reference data seeded", "product_types", len(ProductTypes), "colors", len(Colors))

	if products <= 0 {
		return nil
	}

	var (
		types  []models.ProductType
		colors []models.Color
	)
	if err := db.WithContext(ctx).Find(&types).Error; err != nil {
		return fmt.Errorf("load product types: %w", err)
	}
	if err := db.WithContext(ctx).Find(&colors).Error; err != nil {
		return fmt.Errorf("load colors: %w", err)
	}
	if len(types) == 0 {
		return fmt.Errorf("no product types to assign")
	}

	for i := 0; i < products; i++ {
		product := fakers.ProductFaker(types[rand.Intn(len(types))], colors)
		if err := db.WithContext(ctx).Omit("ProductType", "Colors.*").Create(product).Error; err != nil {
			return fmt.Errorf("seed product %d: %w", i+1, err)
		}
	}
	logger.InfoContext(ctx, "Fake products seeded", "count", products)
	return nil
}
