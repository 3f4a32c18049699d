package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Active reports whether the reservation still holds its table.
func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	TableID         uint              `gorm:"not null;index" json:"table_id"`
	Table           *Table            `json:"table,omitempty"`
	CustomerName    string            `gorm:"size:120;not null" json:"customer_name"`
	CustomerPhone   string            `gorm:"size:30;not null" json:"customer_phone"`
	CustomerEmail   *string           `gorm:"size:120" json:"customer_email,omitempty"`
	NumberOfGuests  int               `gorm:"not null" json:"number_of_guests"`
	ReservationDate string            `gorm:"size:10;not null;index" json:"reservation_date"`
	ReservationTime string            `gorm:"size:5;not null" json:"reservation_time"`
	AdvancePayment  float64           `gorm:"not null;default:0" json:"advance_payment"`
	PaymentStatus   string            `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	SpecialRequests *string           `gorm:"type:text" json:"special_requests,omitempty"`
	Status          ReservationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentStatusFor derives the payment status of a booking from its deposit.
func PaymentStatusFor(advance float64) string {
	if advance > 0 {
		return PaymentPaid
	}
	return PaymentPending
}
