package models

import "time"

type InventoryStatus string

const (
	InStock    InventoryStatus = "in_stock"
	LowStock   InventoryStatus = "low_stock"
	OutOfStock InventoryStatus = "out_of_stock"
)

type InventoryItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:120;not null" json:"name"`
	Category        string          `gorm:"size:60;not null;index" json:"category"`
	CurrentStock    int             `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock    int             `gorm:"not null;default:0" json:"minimum_stock"`
	Status          InventoryStatus `gorm:"size:20;not null;default:'in_stock'" json:"status"`
	SupplierName    *string         `gorm:"size:120" json:"supplier_name,omitempty"`
	SupplierContact *string         `gorm:"size:120" json:"supplier_contact,omitempty"`
	PurchaseCost    float64         `gorm:"not null;default:0" json:"purchase_cost"`
	Unit            string          `gorm:"size:20;not null" json:"unit"`
	LastRestocked   *time.Time      `json:"last_restocked,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StockStatus classifies a stock level against the item's minimum.
func StockStatus(stock, minimum int) InventoryStatus {
	switch {
	case stock <= 0:
		return OutOfStock
	case stock <= minimum:
		return LowStock
	default:
		return InStock
	}
}
