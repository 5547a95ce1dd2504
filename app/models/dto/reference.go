package dto

import "github.com/Rakhulsr/go-catalog/app/models"

type ColorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type ProductTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the 400 body. Errors is only set for field validation
// failures and is keyed by JSON field name.
type MessageResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func NewColorResponses(colors []models.Color) []ColorResponse {
	out := make([]ColorResponse, 0, len(colors))
	for _, c := range colors {
		out = append(out, ColorResponse{ID: c.ID, Name: c.Name, Hex: c.Hex})
	}
	return out
}

func NewProductTypeResponses(types []models.ProductType) []ProductTypeResponse {
	out := make([]ProductTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ProductTypeResponse{ID: t.ID, Name: t.Name})
	}
	return out
}
