package domain

import "time"

type LeadStatus string

const (
	LeadNew            LeadStatus = "new"
	LeadContacted      LeadStatus = "contacted"
	LeadFollowUp       LeadStatus = "follow_up"
	LeadTrialScheduled LeadStatus = "trial_scheduled"
	LeadTrialDone      LeadStatus = "trial_completed"
	LeadConverted      LeadStatus = "converted"
	LeadLost           LeadStatus = "lost"
)

// Lead is a prospect moving through the enquiry funnel until it is
// converted into a Member or marked lost.
type Lead struct {
	ID                string     `json:"id"`
	Name              string     `json:"name" validate:"required"`
	Phone             string     `json:"phone" validate:"required"`
	Email             string     `json:"email,omitempty"`
	Source            string     `json:"source,omitempty"`
	Status            LeadStatus `json:"status"`
	Notes             string     `json:"notes,omitempty"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
	ConvertedMemberID string     `json:"converted_member_id,omitempty"`
	ConvertedAt       *time.Time `json:"converted_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (l *Lead) IsConverted() bool {
	return l.Status == LeadConverted
}

// IsTerminal reports whether the lead can no longer move through the funnel.
func (l *Lead) IsTerminal() bool {
	return l.Status == LeadConverted || l.Status == LeadLost
}
