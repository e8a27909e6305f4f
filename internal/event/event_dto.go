package event

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Location    string    `json:"location" binding:"required,max=255"`
	Notes       string    `json:"notes" binding:"omitempty,max=500"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	CompanyID   *string   `json:"company_id" binding:"omitempty,uuid"`
}

type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Location    string    `json:"location" binding:"required,max=255"`
	Notes       string    `json:"notes" binding:"omitempty,max=500"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	CompanyID   *string   `json:"company_id" binding:"omitempty,uuid"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyID   *string   `json:"company_id,omitempty"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
