package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile menempel 1:1 ke user dari identity provider; ID-nya sama dengan
// user_id pada token.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  *string   `gorm:"type:varchar(255)" json:"full_name"`
	Alias     *string   `gorm:"type:varchar(100)" json:"alias"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url"`
	Position  *string   `gorm:"type:varchar(100)" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
