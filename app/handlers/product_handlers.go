package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/client"
	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const (
	msgLoadProducts      = "Failed to load products"
	msgProductNotFound   = "Product not found. The product may have been deleted or never existed."
	msgLoadProduct       = "Failed to load product details. Please try again later."
	msgLoadFormData      = "Failed to load form data"
	msgFixErrors         = "Please fix the errors below"
	msgCreateFailed      = "Failed to create product"
	msgCreateSucceeded   = "Product created successfully"
	createProductPageURL = "/create-product"
)

type ProductPageHandler struct {
	client    client.CatalogClient
	sessions  sessions.FlashStore
	validator *validator.Validate
	render    *render.Render
	logger    *slog.Logger
}

func NewProductPageHandler(c client.CatalogClient, s sessions.FlashStore, v *validator.Validate, r *render.Render, logger *slog.Logger) *ProductPageHandler {
	return &ProductPageHandler{
		client:    c,
		sessions:  s,
		validator: v,
		render:    r,
		logger:    logger,
	}
}

// GET / and GET /products?page=
func (h *ProductPageHandler) ProductList(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	data := other.ProductListPageData{
		BaseData: helpers.GetBaseData(r, "Products", []breadcrumb.Breadcrumb{
			{Name: "Products", URL: "/products"},
		}),
		CurrentPage: page,
	}
	if flash, ok := h.sessions.PopFlash(w, r); ok {
		data.BaseData.MessageStatus = flash.Status
		data.BaseData.Message = flash.Message
	}

	result, err := h.client.GetProducts(r.Context(), page, client.DefaultPageSize)
	if err != nil {
		data.Error = msgLoadProducts
		_ = h.render.HTML(w, http.StatusBadGateway, "products", data)
		return
	}

	data.Products = result.Data
	data.TotalCount = result.TotalCount
	data.TotalPages = int((result.TotalCount + int64(client.DefaultPageSize) - 1) / int64(client.DefaultPageSize))

	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

// GET /products/{id}
func (h *ProductPageHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	data := other.ProductDetailPageData{
		BaseData: helpers.GetBaseData(r, "Product details", []breadcrumb.Breadcrumb{
			{Name: "Products", URL: "/products"},
		}),
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		data.Error = msgProductNotFound
		_ = h.render.HTML(w, http.StatusNotFound, "product", data)
		return
	}

	product, err := h.client.GetProduct(r.Context(), uint(id))
	if err != nil {
		status := http.StatusBadGateway
		data.Error = msgLoadProduct
		if client.IsNotFound(err) {
			status = http.StatusNotFound
			data.Error = msgProductNotFound
		}
		_ = h.render.HTML(w, status, "product", data)
		return
	}

	data.Product = product
	data.BaseData.Title = product.Name
	data.BaseData.Breadcrumbs = append(data.BaseData.Breadcrumbs, breadcrumb.Breadcrumb{
		Name: product.Name,
		URL:  fmt.Sprintf("/products/%d", product.ID),
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

// GET /create-product
func (h *ProductPageHandler) CreateProductForm(w http.ResponseWriter, r *http.Request) {
	data := h.newCreatePageData(r)

	status := http.StatusOK
	if data.Error != "" {
		status = http.StatusBadGateway
	}
	_ = h.render.HTML(w, status, "create_product", data)
}

// POST /create-product
func (h *ProductPageHandler) CreateProductPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "CreateProductPost: failed to parse form", "error", err)
	}

	form := parseProductForm(r.PostForm)

	if err := h.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			h.logger.ErrorContext(r.Context(), "CreateProductPost: validator failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		data := h.newCreatePageData(r)
		data.Form = form
		data.Errors = helpers.FormatValidationErrors(validationErrors)
		if data.Error == "" {
			data.Error = msgFixErrors
		}
		_ = h.render.HTML(w, http.StatusBadRequest, "create_product", data)
		return
	}

	if _, err := h.client.CreateProduct(r.Context(), form.Request()); err != nil {
		data := h.newCreatePageData(r)
		data.Form = form
		data.Error = msgCreateFailed
		_ = h.render.HTML(w, http.StatusBadGateway, "create_product", data)
		return
	}

	flash := sessions.Flash{Status: "success", Message: msgCreateSucceeded}
	if err := h.sessions.SetFlash(w, r, flash); err != nil {
		h.logger.WarnContext(r.Context(), "CreateProductPost: failed to store flash", "error", err)
		http.Redirect(w, r, fmt.Sprintf("/?status=%s&message=%s", flash.Status, url.QueryEscape(flash.Message)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ProductPageHandler) newCreatePageData(r *http.Request) other.CreateProductPageData {
	data := other.CreateProductPageData{
		BaseData: helpers.GetBaseData(r, "Create product", []breadcrumb.Breadcrumb{
			{Name: "Products", URL: "/products"},
			{Name: "Create product", URL: createProductPageURL},
		}),
		Errors: map[string]string{},
	}

	productTypes, err := h.client.GetProductTypes(r.Context())
	if err != nil {
		data.Error = msgLoadFormData
		return data
	}
	colors, err := h.client.GetColors(r.Context())
	if err != nil {
		data.Error = msgLoadFormData
		return data
	}

	data.ProductTypes = productTypes
	data.Colors = colors
	return data
}

// parseProductForm reads the posted fields. Unparseable numbers become zero
// and are then reported by validation.
func parseProductForm(values url.Values) other.ProductForm {
	form := other.ProductForm{
		Name:        strings.TrimSpace(values.Get("name")),
		Img:         strings.TrimSpace(values.Get("img")),
		Description: values.Get("description"),
	}

	form.ProductTypeID, _ = strconv.Atoi(values.Get("productType"))

	for _, raw := range values["colors"] {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			continue
		}
		form.Colors = append(form.Colors, id)
	}
	return form
}
