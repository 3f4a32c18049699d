package models

import (
	"time"

	"gorm.io/datatypes"
)

// SaleLineItem is a snapshot of one cart line; it does not reference MenuItem.
type SaleLineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type SalesRecord struct {
	ID            uint                              `gorm:"primaryKey" json:"id"`
	OrderID       string                            `gorm:"size:36;not null;index" json:"order_id"`
	Items         datatypes.JSONSlice[SaleLineItem] `json:"items"`
	TotalAmount   float64                           `gorm:"not null" json:"total_amount"`
	PaymentMethod string                            `gorm:"size:20;not null" json:"payment_method"`
	CustomerName  *string                           `gorm:"size:120" json:"customer_name,omitempty"`
	CustomerPhone *string                           `gorm:"size:30" json:"customer_phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
