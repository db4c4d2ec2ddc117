package member

type CreateMemberRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	DateOfBirth       string `json:"date_of_birth"` // YYYY-MM-DD
	Gender            string `json:"gender"`
	MedicalConditions string `json:"medical_conditions"`
	ConsentSigned     bool   `json:"consent_signed"`
	Notes             string `json:"notes"`
}

type UpdateMemberRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	MedicalConditions string `json:"medical_conditions"`
	ConsentSigned     *bool  `json:"consent_signed"`
	Notes             string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
