package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepositoryImpl interface {
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func colorsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// GetPaginated returns one page of products, newest first, with their type
// and colors loaded, plus the total number of products.
func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	err := p.db.WithContext(ctx).
		Preload("ProductType").
		Preload("Colors", colorsByID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("ProductType").
		Preload("Colors", colorsByID).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

// CreateProduct inserts the product row and one ProductColor row per entry in
// product.Colors in a single transaction. Color and ProductType rows are
// referenced, never written.
func (p *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	err := p.db.WithContext(ctx).
		Omit("ProductType", "Colors.*").
		Create(product).Error
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}
