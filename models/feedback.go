package models

import "time"

type Feedback struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CustomerName string  `gorm:"size:120;not null" json:"customer_name"`
	Email        *string `gorm:"size:120" json:"email,omitempty"`
	Rating       int     `gorm:"not null" json:"rating"`
	Comment      *string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string { return "customer_feedback" }
