package profile

import "time"

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Alias     *string `json:"alias" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
	Position  *string `json:"position" binding:"omitempty,max=100"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name"`
	Alias     *string   `json:"alias"`
	AvatarURL *string   `json:"avatar_url"`
	Position  *string   `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
