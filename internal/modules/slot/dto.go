package slot

type CreateSlotRequest struct {
	Name              string `json:"name" binding:"required"`
	StartTime         string `json:"start_time" binding:"required"` // "06:30"
	EndTime           string `json:"end_time" binding:"required"`   // "07:30"
	Capacity          int    `json:"capacity" binding:"required,gte=1"`
	ExceptionCapacity int    `json:"exception_capacity" binding:"gte=0"`
	Notes             string `json:"notes"`
}

type UpdateSlotRequest struct {
	Name              string `json:"name"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Capacity          *int   `json:"capacity"`
	ExceptionCapacity *int   `json:"exception_capacity"`
	IsActive          *bool  `json:"is_active"`
	Notes             string `json:"notes"`
}
