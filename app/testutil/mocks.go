package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/dto"
)

// DiscardLogger drops everything below error level and writes nothing.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type MockProductRepository struct {
	GetPaginatedFunc  func(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	GetByIDFunc       func(ctx context.Context, id uint) (*models.Product, error)
	CreateProductFunc func(ctx context.Context, product *models.Product) error
}

func (m *MockProductRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	if m.GetPaginatedFunc != nil {
		return m.GetPaginatedFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, product)
	}
	return nil
}

type MockColorRepository struct {
	GetAllFunc    func(ctx context.Context) ([]models.Color, error)
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]models.Color, error)
}

func (m *MockColorRepository) GetAll(ctx context.Context) ([]models.Color, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []models.Color{}, nil
}

func (m *MockColorRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Color, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return []models.Color{}, nil
}

type MockProductTypeRepository struct {
	GetAllFunc func(ctx context.Context) ([]models.ProductType, error)
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *MockProductTypeRepository) GetAll(ctx context.Context) ([]models.ProductType, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []models.ProductType{}, nil
}

func (m *MockProductTypeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type MockProductService struct {
	ListColorsFunc       func(ctx context.Context) ([]dto.ColorResponse, error)
	ListProductTypesFunc func(ctx context.Context) ([]dto.ProductTypeResponse, error)
	ListProductsFunc     func(ctx context.Context, page, pageSize int) (*dto.ProductPage, error)
	GetProductFunc       func(ctx context.Context, id uint) (*dto.ProductInfo, error)
	CreateProductFunc    func(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error)
}

func (m *MockProductService) ListColors(ctx context.Context) ([]dto.ColorResponse, error) {
	return m.ListColorsFunc(ctx)
}

func (m *MockProductService) ListProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	return m.ListProductTypesFunc(ctx)
}

func (m *MockProductService) ListProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error) {
	return m.ListProductsFunc(ctx, page, pageSize)
}

func (m *MockProductService) GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error) {
	return m.CreateProductFunc(ctx, req)
}

type MockCatalogClient struct {
	GetProductsFunc     func(ctx context.Context, page, pageSize int) (*dto.ProductPage, error)
	GetProductFunc      func(ctx context.Context, id uint) (*dto.ProductInfo, error)
	GetProductTypesFunc func(ctx context.Context) ([]dto.ProductTypeResponse, error)
	GetColorsFunc       func(ctx context.Context) ([]dto.ColorResponse, error)
	CreateProductFunc   func(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error)
}

func (m *MockCatalogClient) GetProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error) {
	return m.GetProductsFunc(ctx, page, pageSize)
}

func (m *MockCatalogClient) GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *MockCatalogClient) GetProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	if m.GetProductTypesFunc != nil {
		return m.GetProductTypesFunc(ctx)
	}
	return []dto.ProductTypeResponse{{ID: 1, Name: "Sofa"}}, nil
}

func (m *MockCatalogClient) GetColors(ctx context.Context) ([]dto.ColorResponse, error) {
	if m.GetColorsFunc != nil {
		return m.GetColorsFunc(ctx)
	}
	return []dto.ColorResponse{{ID: 1, Name: "Blue", Hex: "#0000FF"}, {ID: 2, Name: "Red", Hex: "#FF0000"}}, nil
}

func (m *MockCatalogClient) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error) {
	return m.CreateProductFunc(ctx, req)
}

// TestProduct returns a fully loaded product: type Sofa, colors Blue and Red.
func TestProduct(id uint, name string) *models.Product {
	return &models.Product{
		ID:            id,
		Name:          name,
		Img:           "https://example.com/" + name + ".jpg",
		Description:   name + " description",
		ProductTypeID: 1,
		ProductType:   models.ProductType{ID: 1, Name: "Sofa"},
		Colors: []models.Color{
			{ID: 1, Name: "Blue", Hex: "#0000FF"},
			{ID: 2, Name: "Red", Hex: "#FF0000"},
		},
	}
}
