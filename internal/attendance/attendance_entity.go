package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	Date         time.Time  `gorm:"column:date;type:date;not null;index"`
	ClockIn      *time.Time `gorm:"column:clock_in;type:timestamptz"`
	ClockOut     *time.Time `gorm:"column:clock_out;type:timestamptz"`
	Status       Status     `gorm:"column:status;type:varchar(30);not null"`
	LocationName *string    `gorm:"column:location_name;type:text"`
	Latitude     *float64   `gorm:"column:latitude"`
	Longitude    *float64   `gorm:"column:longitude"`
	Notes        *string    `gorm:"column:notes;type:text"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendance"
}
