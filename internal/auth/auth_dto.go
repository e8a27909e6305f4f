package auth

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required,max=255"`
	Password    string `json:"password" binding:"required,min=6"`
	JobHuntType string `json:"job_hunt_type" binding:"omitempty,oneof=new_grad mid_career"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
