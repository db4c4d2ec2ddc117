package subscription

type CreateSubscriptionRequest struct {
	MemberID       string  `json:"member_id" binding:"required"`
	PlanID         string  `json:"plan_id" binding:"required"`
	SlotID         string  `json:"slot_id" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	DiscountAmount float64 `json:"discount_amount"`
	DiscountReason string  `json:"discount_reason"`
	Notes          string  `json:"notes"`
}

type ExtendRequest struct {
	Days   int    `json:"days" binding:"required"`
	Reason string `json:"reason"`
}

type ExtraDaysRequest struct {
	TotalDays int    `json:"total_days"`
	Reason    string `json:"reason"`
}

type TransferRequest struct {
	NewSlotID     string `json:"new_slot_id" binding:"required"`
	EffectiveDate string `json:"effective_date" binding:"required"` // YYYY-MM-DD
	Reason        string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
