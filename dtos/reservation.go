package dtos

// BookingForm is what the floor-plan booking dialog submits for the selected table.
type BookingForm struct {
	TableID         uint    `json:"table_id" binding:"required"`
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerPhone   string  `json:"customer_phone" binding:"required"`
	CustomerEmail   *string `json:"customer_email,omitempty" binding:"omitempty,email"`
	NumberOfGuests  int     `json:"number_of_guests" binding:"required,gt=0"`
	ReservationDate string  `json:"reservation_date" binding:"required,datestr"`
	ReservationTime string  `json:"reservation_time" binding:"required,clock"`
	AdvancePayment  float64 `json:"advance_payment" binding:"gte=0"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

type ReservationFilter struct {
	Status string `form:"status"`
	Date   string `form:"date" binding:"omitempty,datestr"`
}
