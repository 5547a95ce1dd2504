package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/dto"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

type ProductService interface {
	ListColors(ctx context.Context) ([]dto.ColorResponse, error)
	ListProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error)
	ListProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error)
	GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error)
}

type productService struct {
	productRepo     repositories.ProductRepositoryImpl
	colorRepo       repositories.ColorRepositoryImpl
	productTypeRepo repositories.ProductTypeRepositoryImpl
	logger          *slog.Logger
}

func NewProductService(
	p repositories.ProductRepositoryImpl,
	c repositories.ColorRepositoryImpl,
	t repositories.ProductTypeRepositoryImpl,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo:     p,
		colorRepo:       c,
		productTypeRepo: t,
		logger:          logger,
	}
}

func (s *productService) ListColors(ctx context.Context) ([]dto.ColorResponse, error) {
	colors, err := s.colorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewColorResponses(colors), nil
}

func (s *productService) ListProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	types, err := s.productTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductTypeResponses(types), nil
}

// ListProducts expects page and pageSize to be positive; the caller applies
// defaults.
func (s *productService) ListProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error) {
	offset := (page - 1) * pageSize

	products, total, err := s.productRepo.GetPaginated(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductListItem(&products[i]))
	}

	return &dto.ProductPage{
		Data:       items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetProduct returns repositories.ErrProductNotFound when no product has id.
func (s *productService) GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := dto.NewProductInfo(product)
	return &info, nil
}

// CreateProduct checks the product type, then the full color set, and only
// then writes. req must already have passed field validation.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error) {
	exists, err := s.productTypeRepo.Exists(ctx, uint(req.ProductTypeID))
	if err != nil {
		return nil, err
	}
	if !exists {
		notFound := &ProductTypeNotFoundError{ID: req.ProductTypeID}
		s.logger.ErrorContext(ctx, notFound.Error())
		return nil, notFound
	}

	requested := uniqueIDs(req.Colors)
	lookup := make([]uint, 0, len(requested))
	for _, id := range requested {
		if id > 0 {
			lookup = append(lookup, uint(id))
		}
	}

	colors, err := s.colorRepo.FindByIDs(ctx, lookup)
	if err != nil {
		return nil, err
	}

	if missing := missingColorIDs(requested, colors); len(missing) > 0 {
		missingErr := &MissingColorsError{IDs: missing}
		s.logger.ErrorContext(ctx, missingErr.Error())
		return nil, missingErr
	}

	product := &models.Product{
		Name:          req.Name,
		Img:           req.Img,
		Description:   req.Description,
		ProductTypeID: uint(req.ProductTypeID),
		Colors:        colors,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	created, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("reload created product %d: %w", product.ID, err)
	}

	s.logger.InfoContext(ctx, "product created", "id", created.ID, "colors", len(created.Colors))

	info := dto.NewProductInfo(created)
	return &info, nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingColorIDs(requested []int, found []models.Color) []int {
	foundIDs := make(map[int]struct{}, len(found))
	for _, c := range found {
		foundIDs[int(c.ID)] = struct{}{}
	}

	var missing []int
	for _, id := range requested {
		if _, ok := foundIDs[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
