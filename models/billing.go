package models

import "time"

// BillingSettings holds operator-editable rates shown on the billing screen.
type BillingSettings struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	RestaurantName    string  `gorm:"size:120;not null" json:"restaurant_name"`
	Currency          string  `gorm:"size:10;not null" json:"currency"`
	GSTRate           float64 `gorm:"not null" json:"gst_rate"`
	ServiceChargeRate float64 `gorm:"not null" json:"service_charge_rate"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BillingSettings) TableName() string { return "billing_settings" }
