package models

import "time"

type MenuItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description     *string `gorm:"type:text" json:"description,omitempty"`
	Category        string  `gorm:"size:60;not null;index" json:"category"`
	Price           float64 `gorm:"not null" json:"price"`
	ImageURL        *string `gorm:"size:500" json:"image_url,omitempty"`
	IsAvailable     bool    `gorm:"not null" json:"is_available"`
	PreparationTime *int    `json:"preparation_time,omitempty"`
	TotalOrders     int     `gorm:"not null;default:0" json:"total_orders"`
	TotalRevenue    float64 `gorm:"not null;default:0" json:"total_revenue"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
