package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductTypeNotFoundError reports a create request naming a product type
// that does not exist.
type ProductTypeNotFoundError struct {
	ID int
}

func (e *ProductTypeNotFoundError) Error() string {
	return fmt.Sprintf("Product type with ID %d not found", e.ID)
}

// MissingColorsError lists every requested color id without a Color row, in
// request order.
type MissingColorsError struct {
	IDs []int
}

func (e *MissingColorsError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("Colors with IDs %s not found", strings.Join(ids, ", "))
}
