package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ProductTypeRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.ProductType, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type productTypeRepository struct {
	db *gorm.DB
}

func NewProductTypeRepository(db *gorm.DB) ProductTypeRepositoryImpl {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) GetAll(ctx context.Context) ([]models.ProductType, error) {
	var types []models.ProductType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	return types, nil
}

func (r *productTypeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductType{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check product type %d: %w", id, err)
	}
	return count > 0, nil
}
