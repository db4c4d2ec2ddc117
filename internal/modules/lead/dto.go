package lead

type CreateLeadRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Source       string `json:"source"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"follow_up_date"` // YYYY-MM-DD
}

type UpdateLeadRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Source       string `json:"source"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"follow_up_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ConvertLeadRequest turns a lead into a member, optionally opening the
// first subscription in the same step.
type ConvertLeadRequest struct {
	PlanID         string  `json:"plan_id"`
	SlotID         string  `json:"slot_id"`
	StartDate      string  `json:"start_date"` // YYYY-MM-DD
	DiscountAmount float64 `json:"discount_amount"`
	DiscountReason string  `json:"discount_reason"`
}
