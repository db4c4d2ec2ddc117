package plan

type CreatePlanRequest struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	Price          float64 `json:"price" binding:"required,gte=0"`
	DurationMonths int     `json:"duration_months" binding:"required,gte=1"`
	Description    string  `json:"description"`
}

type UpdatePlanRequest struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Price          *float64 `json:"price"`
	DurationMonths *int     `json:"duration_months"`
	Description    string   `json:"description"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
