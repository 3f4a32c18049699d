package models

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

// Table is a physical seating unit placed on the floor plan.
type Table struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableNumber int         `gorm:"not null;uniqueIndex" json:"table_number"`
	Capacity    int         `gorm:"not null;default:2" json:"capacity"`
	FloorX      float64     `gorm:"not null;default:0" json:"floor_x"`
	FloorY      float64     `gorm:"not null;default:0" json:"floor_y"`
	Status      TableStatus `gorm:"size:20;not null;default:'available'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Table) TableName() string { return "restaurant_tables" }
