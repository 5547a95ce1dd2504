package models

import (
	"time"
)

type Product struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:255;not null" json:"name"`
	Img           string      `gorm:"size:500" json:"img"`
	Description   string      `gorm:"size:700" json:"description"`
	ProductTypeID uint        `gorm:"not null;index" json:"productTypeId"`
	ProductType   ProductType `gorm:"foreignKey:ProductTypeID;constraint:OnDelete:RESTRICT" json:"-"`
	Colors        []Color     `gorm:"many2many:ProductColor;joinForeignKey:ProductID;joinReferences:ColorID" json:"-"`
	CreatedAt     time.Time   `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "Product"
}

// ProductColor is the join row between Product and Color. Both sides cascade,
// so removing a product or a color drops its links.
type ProductColor struct {
	ProductID uint    `gorm:"primaryKey;column:product_id;autoIncrement:false"`
	ColorID   uint    `gorm:"primaryKey;column:color_id;autoIncrement:false"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Color     Color   `gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
}

func (ProductColor) TableName() string {
	return "ProductColor"
}
