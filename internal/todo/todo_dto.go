package todo

import "time"

type CreateTodoRequest struct {
	TaskName  string     `json:"task_name" binding:"required,max=255"`
	Notes     string     `json:"notes" binding:"omitempty,max=500"`
	DueDate   *time.Time `json:"due_date"`
	Completed bool       `json:"completed"`
	CompanyID *string    `json:"company_id" binding:"omitempty,uuid"`
}

type UpdateTodoRequest struct {
	TaskName  string     `json:"task_name" binding:"required,max=255"`
	Notes     string     `json:"notes" binding:"omitempty,max=500"`
	DueDate   *time.Time `json:"due_date"`
	Completed bool       `json:"completed"`
	CompanyID *string    `json:"company_id" binding:"omitempty,uuid"`
}

// ReminderInput comes from the event-scheduled consumer rather than an HTTP
// request, so it bypasses binding validation.
type ReminderInput struct {
	EventID   string
	CompanyID string
	TaskName  string
	DueDate   time.Time
}

type TodoResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CompanyID *string    `json:"company_id,omitempty"`
	TaskName  string     `json:"task_name"`
	Notes     string     `json:"notes"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
