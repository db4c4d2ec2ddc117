package trial

type CreateTrialRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	LeadID string `json:"lead_id"`
	Notes  string `json:"notes"`
}
