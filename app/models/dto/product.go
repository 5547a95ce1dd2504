package dto

import "github.com/Rakhulsr/go-catalog/app/models"

type ColorInfo struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type ProductTypeInfo struct {
	Name string `json:"name"`
}

type ProductListItem struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Img         string          `json:"img"`
	ProductType ProductTypeInfo `json:"productType"`
	Colors      []ColorInfo     `json:"colors"`
}

// ProductInfo is the single-product view: every list item field plus the
// description.
type ProductInfo struct {
	ProductListItem
	Description string `json:"description"`
}

type ProductPage struct {
	Data       []ProductListItem `json:"data"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

type CreateProductRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Img           string `json:"img" validate:"omitempty,max=500,web_url"`
	Description   string `json:"description" validate:"max=700"`
	ProductTypeID int    `json:"productTypeId" validate:"required,gte=1"`
	Colors        []int  `json:"colors" validate:"required,min=1"`
}

func NewProductListItem(p *models.Product) ProductListItem {
	colors := make([]ColorInfo, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, ColorInfo{Name: c.Name, Hex: c.Hex})
	}

	return ProductListItem{
		ID:          p.ID,
		Name:        p.Name,
		Img:         p.Img,
		ProductType: ProductTypeInfo{Name: p.ProductType.Name},
		Colors:      colors,
	}
}

func NewProductInfo(p *models.Product) ProductInfo {
	return ProductInfo{
		ProductListItem: NewProductListItem(p),
		Description:     p.Description,
	}
}
