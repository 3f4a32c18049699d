package dtos

type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,gt=0"`
}

type QuoteRequest struct {
	Items []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

type PlaceOrderRequest struct {
	TableID       *uint            `json:"table_id" binding:"required"`
	Items         []OrderLineInput `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string           `json:"payment_method"`
	CustomerName  *string          `json:"customer_name,omitempty"`
	CustomerPhone *string          `json:"customer_phone,omitempty"`
}

type SalesFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Date     string `form:"date" binding:"omitempty,datestr"`
}
