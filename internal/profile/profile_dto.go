package profile

import "time"

type UpdateProfileRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
	JobHuntType *string `json:"job_hunt_type" binding:"omitempty,oneof=new_grad mid_career"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	JobHuntType *string   `json:"job_hunt_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
