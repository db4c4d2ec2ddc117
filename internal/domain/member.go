package domain

import "time"

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
	MemberTrial    MemberStatus = "trial"
	MemberExpired  MemberStatus = "expired"
	MemberPending  MemberStatus = "pending"
)

// Member is a registered studio member. Members are never hard-deleted;
// lifecycle is driven entirely by Status.
type Member struct {
	ID                string       `json:"id"`
	Name              string       `json:"name" validate:"required"`
	Phone             string       `json:"phone" validate:"required"`
	Email             string       `json:"email,omitempty"`
	Address           string       `json:"address,omitempty"`
	DateOfBirth       *time.Time   `json:"date_of_birth,omitempty"`
	Gender            string       `json:"gender,omitempty"`
	Status            MemberStatus `json:"status"`
	AssignedSlotID    string       `json:"assigned_slot_id,omitempty"`
	MedicalConditions string       `json:"medical_conditions,omitempty"`
	ConsentSigned     bool         `json:"consent_signed"`
	JoinDate          time.Time    `json:"join_date"`
	Notes             string       `json:"notes,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}
