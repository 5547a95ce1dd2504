package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ColorRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Color, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Color, error)
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepositoryImpl {
	return &colorRepository{db: db}
}

func (r *colorRepository) GetAll(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	return colors, nil
}

// FindByIDs returns the colors whose id is in ids. Ids with no row are simply
// absent from the result.
func (r *colorRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Color, error) {
	colors := []models.Color{}
	if len(ids) == 0 {
		return colors, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("find colors: %w", err)
	}
	return colors, nil
}
