package dtos

type BillingInput struct {
	RestaurantName    string  `json:"restaurant_name" binding:"required"`
	Currency          string  `json:"currency" binding:"required"`
	GSTRate           float64 `json:"gst_rate" binding:"gte=0,lte=100"`
	ServiceChargeRate float64 `json:"service_charge_rate" binding:"gte=0,lte=100"`
}

type FeedbackInput struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Comment      *string `json:"comment,omitempty"`
}
