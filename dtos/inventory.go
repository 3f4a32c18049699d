package dtos

type InventoryInput struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	CurrentStock    int     `json:"current_stock" binding:"gte=0"`
	MinimumStock    int     `json:"minimum_stock" binding:"gte=0"`
	SupplierName    *string `json:"supplier_name,omitempty"`
	SupplierContact *string `json:"supplier_contact,omitempty"`
	PurchaseCost    float64 `json:"purchase_cost" binding:"gte=0"`
	Unit            string  `json:"unit" binding:"required"`
}

type StockInput struct {
	CurrentStock *int `json:"current_stock" binding:"required,gte=0"`
}

type InventoryFilter struct {
	Status   string `form:"status"`
	Category string `form:"category"`
}
