package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/dto"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedColors = map[uint]models.Color{
	1: {ID: 1, Name: "Blue", Hex: "#0000FF"},
	2: {ID: 2, Name: "Red", Hex: "#FF0000"},
}

func findStoredColors(_ context.Context, ids []uint) ([]models.Color, error) {
	out := []models.Color{}
	for _, id := range ids {
		if c, ok := storedColors[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func typeExists(_ context.Context, id uint) (bool, error) {
	return id == 1, nil
}

func TestProductService_ListProducts_OffsetAndProjection(t *testing.T) {
	ctx := context.Background()

	productRepo := &testutil.MockProductRepository{
		GetPaginatedFunc: func(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
			assert.Equal(t, 5, limit)
			assert.Equal(t, 10, offset)
			return []models.Product{*testutil.TestProduct(7, "LANDSKRONA")}, 42, nil
		},
	}
	service := services.NewProductService(productRepo, &testutil.MockColorRepository{}, &testutil.MockProductTypeRepository{}, testutil.DiscardLogger())

	page, err := service.ListProducts(ctx, 3, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(42), page.TotalCount)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 5, page.PageSize)
	require.Len(t, page.Data, 1)
	assert.Equal(t, uint(7), page.Data[0].ID)
	assert.Equal(t, "Sofa", page.Data[0].ProductType.Name)
	assert.Equal(t, []dto.ColorInfo{{Name: "Blue", Hex: "#0000FF"}, {Name: "Red", Hex: "#FF0000"}}, page.Data[0].Colors)
}

func TestProductService_ListProducts_EmptyPageIsNotNil(t *testing.T) {
	service := services.NewProductService(&testutil.MockProductRepository{}, &testutil.MockColorRepository{}, &testutil.MockProductTypeRepository{}, testutil.DiscardLogger())

	page, err := service.ListProducts(context.Background(), 1, 20)

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	productRepo := &testutil.MockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Product, error) {
			return nil, repositories.ErrProductNotFound
		},
	}
	service := services.NewProductService(productRepo, &testutil.MockColorRepository{}, &testutil.MockProductTypeRepository{}, testutil.DiscardLogger())

	info, err := service.GetProduct(context.Background(), 99)

	assert.Nil(t, info)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestProductService_CreateProduct_UnknownProductType(t *testing.T) {
	colorLookups := 0
	productRepo := &testutil.MockProductRepository{
		CreateProductFunc: func(ctx context.Context, product *models.Product) error {
			t.Fatal("nothing may be persisted for an unknown product type")
			return nil
		},
	}
	colorRepo := &testutil.MockColorRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]models.Color, error) {
			colorLookups++
			return nil, nil
		},
	}
	typeRepo := &testutil.MockProductTypeRepository{ExistsFunc: typeExists}
	service := services.NewProductService(productRepo, colorRepo, typeRepo, testutil.DiscardLogger())

	info, err := service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:          "LANDSKRONA",
		ProductTypeID: 9,
		Colors:        []int{3, 4},
	})

	assert.Nil(t, info)
	var notFound *services.ProductTypeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 9, notFound.ID)
	assert.Equal(t, "Product type with ID 9 not found", err.Error())
	assert.Zero(t, colorLookups, "colors are checked only after the product type")
}

func TestProductService_CreateProduct_ReportsEveryMissingColor(t *testing.T) {
	productRepo := &testutil.MockProductRepository{
		CreateProductFunc: func(ctx context.Context, product *models.Product) error {
			t.Fatal("nothing may be persisted when colors are missing")
			return nil
		},
	}
	colorRepo := &testutil.MockColorRepository{FindByIDsFunc: findStoredColors}
	typeRepo := &testutil.MockProductTypeRepository{ExistsFunc: typeExists}
	service := services.NewProductService(productRepo, colorRepo, typeRepo, testutil.DiscardLogger())

	_, err := service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:          "LANDSKRONA",
		ProductTypeID: 1,
		Colors:        []int{1, 3, 4},
	})

	var missing *services.MissingColorsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []int{3, 4}, missing.IDs)
	assert.Equal(t, "Colors with IDs 3, 4 not found", err.Error())
}

func TestProductService_CreateProduct_NonPositiveColorIDIsMissing(t *testing.T) {
	colorRepo := &testutil.MockColorRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]models.Color, error) {
			assert.Equal(t, []uint{1}, ids)
			return findStoredColors(ctx, ids)
		},
	}
	typeRepo := &testutil.MockProductTypeRepository{ExistsFunc: typeExists}
	service := services.NewProductService(&testutil.MockProductRepository{}, colorRepo, typeRepo, testutil.DiscardLogger())

	_, err := service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:          "LANDSKRONA",
		ProductTypeID: 1,
		Colors:        []int{1, -2},
	})

	var missing *services.MissingColorsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []int{-2}, missing.IDs)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	var saved *models.Product
	productRepo := &testutil.MockProductRepository{
		CreateProductFunc: func(ctx context.Context, product *models.Product) error {
			product.ID = 11
			saved = product
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Product, error) {
			require.NotNil(t, saved)
			assert.Equal(t, uint(11), id)
			p := *saved
			p.ProductType = models.ProductType{ID: 1, Name: "Sofa"}
			return &p, nil
		},
	}
	colorRepo := &testutil.MockColorRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]models.Color, error) {
			assert.Equal(t, []uint{1, 2}, ids, "duplicate ids are looked up once")
			return findStoredColors(ctx, ids)
		},
	}
	typeRepo := &testutil.MockProductTypeRepository{ExistsFunc: typeExists}
	service := services.NewProductService(productRepo, colorRepo, typeRepo, testutil.DiscardLogger())

	info, err := service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:          "LANDSKRONA",
		Description:   "Three-seat sofa",
		ProductTypeID: 1,
		Colors:        []int{1, 2, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), info.ID)
	assert.Equal(t, "LANDSKRONA", info.Name)
	assert.Equal(t, "Three-seat sofa", info.Description)
	assert.Equal(t, "Sofa", info.ProductType.Name)
	assert.Equal(t, []dto.ColorInfo{{Name: "Blue", Hex: "#0000FF"}, {Name: "Red", Hex: "#FF0000"}}, info.Colors)
	require.NotNil(t, saved)
	assert.Len(t, saved.Colors, 2)
}

func TestProductService_CreateProduct_RepositoryError(t *testing.T) {
	expectedErr := errors.New("database error")
	productRepo := &testutil.MockProductRepository{
		CreateProductFunc: func(ctx context.Context, product *models.Product) error {
			return expectedErr
		},
	}
	colorRepo := &testutil.MockColorRepository{FindByIDsFunc: findStoredColors}
	typeRepo := &testutil.MockProductTypeRepository{ExistsFunc: typeExists}
	service := services.NewProductService(productRepo, colorRepo, typeRepo, testutil.DiscardLogger())

	info, err := service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:          "LANDSKRONA",
		ProductTypeID: 1,
		Colors:        []int{1},
	})

	assert.Nil(t, info)
	assert.ErrorIs(t, err, expectedErr)
}
