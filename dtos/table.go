package dtos

type TableInput struct {
	TableNumber int     `json:"table_number" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	FloorX      float64 `json:"floor_x"`
	FloorY      float64 `json:"floor_y"`
	Status      string  `json:"status"`
}
