package other

import (
	"html/template"

	"github.com/Rakhulsr/go-catalog/app/models/dto"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
)

type BasePageData struct {
	Title         string
	CSRFField     template.HTML
	Message       string
	MessageStatus string
	Breadcrumbs   []breadcrumb.Breadcrumb
	CurrentPath   string
}

type ProductListPageData struct {
	BaseData    BasePageData
	Products    []dto.ProductListItem
	Error       string
	CurrentPage int
	TotalPages  int
	TotalCount  int64
}

func (d ProductListPageData) HasPrevious() bool {
	return d.CurrentPage > 1
}

func (d ProductListPageData) HasNext() bool {
	return d.CurrentPage < d.TotalPages
}

type ProductDetailPageData struct {
	BaseData BasePageData
	Product  *dto.ProductInfo
	Error    string
}

// ProductForm mirrors the API's create constraints so predictable failures
// never leave the frontend.
type ProductForm struct {
	Name          string `json:"name" validate:"required,max=255"`
	Img           string `json:"img" validate:"omitempty,max=500,web_url"`
	Description   string `json:"description" validate:"max=700"`
	ProductTypeID int    `json:"productType" validate:"required,gte=1"`
	Colors        []int  `json:"colors" validate:"required,min=1"`
}

func (f ProductForm) Request() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          f.Name,
		Img:           f.Img,
		Description:   f.Description,
		ProductTypeID: f.ProductTypeID,
		Colors:        f.Colors,
	}
}

type CreateProductPageData struct {
	BaseData     BasePageData
	Form         ProductForm
	Errors       map[string]string
	Error        string
	ProductTypes []dto.ProductTypeResponse
	Colors       []dto.ColorResponse
}
