package company

import "time"

type CreateCompanyRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Industry   string  `json:"industry" binding:"omitempty,max=255"`
	WebsiteURL *string `json:"website_url"`
	Status     string  `json:"status"`
	Location   *string `json:"location"`
	Notes      string  `json:"notes" binding:"omitempty,max=500"`
}

type UpdateCompanyRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Industry   string  `json:"industry" binding:"required,max=255"`
	Status     string  `json:"status" binding:"required"`
	Location   *string `json:"location"`
	WebsiteURL *string `json:"website_url"`
	Notes      string  `json:"notes" binding:"omitempty,max=500"`
}

type CompanyResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Industry    string     `json:"industry"`
	Status      string     `json:"status"`
	WebsiteURL  *string    `json:"website_url,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Notes       string     `json:"notes"`
	NextEventAt *time.Time `json:"next_event_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CompanyListResult struct {
	Companies  []CompanyResponse
	TotalPages int
	Page       int
}
