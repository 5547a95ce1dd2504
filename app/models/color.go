package models

import "time"

type Color struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Hex       string    `gorm:"size:7;not null" json:"hex"`
	CreatedAt time.Time `json:"-"`
}

func (Color) TableName() string {
	return "Color"
}
