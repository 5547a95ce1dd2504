package models

import "time"

type ProductType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (ProductType) TableName() string {
	return "ProductType"
}
