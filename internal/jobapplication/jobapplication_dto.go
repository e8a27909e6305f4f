package jobapplication

import "time"

type CreateJobApplicationRequest struct {
	Status    string     `json:"status" binding:"required,max=50"`
	AppliedAt *time.Time `json:"applied_at"`
	Notes     string     `json:"notes" binding:"omitempty,max=500"`
}

// CreateJobApplicationWithCompanyRequest is the top-level create body; the
// nested company route supplies company_id from the path instead.
type CreateJobApplicationWithCompanyRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
	CreateJobApplicationRequest
}

type UpdateJobApplicationRequest struct {
	CompanyID string     `json:"company_id" binding:"required,uuid"`
	Status    string     `json:"status" binding:"required,max=50"`
	AppliedAt *time.Time `json:"applied_at"`
	Notes     string     `json:"notes" binding:"omitempty,max=500"`
}

type JobApplicationResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CompanyID string     `json:"company_id"`
	Status    string     `json:"status"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
