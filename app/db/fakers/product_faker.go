package fakers

import (
	"math/rand"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
)

// ProductFaker builds an unsaved product of the given type with one to three
// of the given colors.
func ProductFaker(productType models.ProductType, colors []models.Color) *models.Product {
	name := strings.ToUpper(faker.Word())
	if len(name) > 255 {
		name = name[:255]
	}

	description := faker.Paragraph()
	if len(description) > 700 {
		description = description[:700]
	}

	picked := make([]models.Color, 0, 3)
	if len(colors) > 0 {
		n := rand.Intn(min(3, len(colors))) + 1
		for _, i := range rand.Perm(len(colors))[:n] {
			picked = append(picked, colors[i])
		}
	}

	return &models.Product{
		Name:          name,
		Img:           "https://picsum.photos/seed/" + strings.ToLower(name) + "/600/400",
		Description:   description,
		ProductTypeID: productType.ID,
		Colors:        picked,
	}
}
