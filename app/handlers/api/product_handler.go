package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models/dto"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20

	maxBodyBytes = 1 << 20
)

type ProductHandler struct {
	service   services.ProductService
	validator *validator.Validate
	render    *render.Render
	logger    *slog.Logger
}

func NewProductHandler(s services.ProductService, v *validator.Validate, r *render.Render, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:   s,
		validator: v,
		render:    r,
		logger:    logger,
	}
}

// GET /api/colors
func (h *ProductHandler) GetColors(w http.ResponseWriter, r *http.Request) error {
	colors, err := h.service.ListColors(r.Context())
	if err != nil {
		return err
	}
	return h.render.JSON(w, http.StatusOK, colors)
}

// GET /api/product-types
func (h *ProductHandler) GetProductTypes(w http.ResponseWriter, r *http.Request) error {
	types, err := h.service.ListProductTypes(r.Context())
	if err != nil {
		return err
	}
	return h.render.JSON(w, http.StatusOK, types)
}

// GET /api/products?page=&pageSize=
//
// Missing, malformed or out of range paging values fall back to the defaults.
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	page := positiveIntOr(query.Get("page"), DefaultPage)
	pageSize := positiveIntOr(query.Get("pageSize"), DefaultPageSize)

	result, err := h.service.ListProducts(r.Context(), page, pageSize)
	if err != nil {
		return err
	}
	return h.render.JSON(w, http.StatusOK, result)
}

// GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}

	product, err := h.service.GetProduct(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return nil
		}
		return err
	}
	return h.render.JSON(w, http.StatusOK, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateProductRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid create product body", "error", err)
		return h.render.JSON(w, http.StatusBadRequest, dto.MessageResponse{
			Message: "Request body must be a JSON product object",
		})
	}

	// Whitespace-only values count as missing.
	req.Name = strings.TrimSpace(req.Name)
	req.Img = strings.TrimSpace(req.Img)

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		return h.render.JSON(w, http.StatusBadRequest, dto.MessageResponse{
			Message: "One or more validation errors occurred",
			Errors:  helpers.FormatValidationErrors(validationErrors),
		})
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		var typeErr *services.ProductTypeNotFoundError
		var colorsErr *services.MissingColorsError
		switch {
		case errors.As(err, &typeErr):
			return h.render.JSON(w, http.StatusBadRequest, dto.MessageResponse{Message: typeErr.Error()})
		case errors.As(err, &colorsErr):
			return h.render.JSON(w, http.StatusBadRequest, dto.MessageResponse{Message: colorsErr.Error()})
		default:
			return err
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", product.ID))
	return h.render.JSON(w, http.StatusCreated, product)
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > math.MaxInt32 {
		return fallback
	}
	return n
}
