package dtos

type MenuItemInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description,omitempty"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price" binding:"gte=0"`
	ImageURL        *string `json:"image_url,omitempty" binding:"omitempty,url"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
	PreparationTime *int    `json:"preparation_time,omitempty" binding:"omitempty,gte=0"`
}

type MenuFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	Category  string `form:"category"`
	Name      string `form:"name"`
	Available *bool  `form:"available"`
}
