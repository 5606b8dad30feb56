package leave

import "time"

type SubmitLeaveRequest struct {
	Category     string   `json:"category" binding:"required,oneof=PERMISSION_HALF_DAY PERMISSION_FULL_DAY SICK LEAVE"`
	Purpose      string   `json:"purpose" binding:"required,min=3,max=500"`
	StartDate    *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	LocationName *string  `json:"location_name" binding:"omitempty,max=255"`
}

type LeaveResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Notes       string    `json:"notes"`
	Amended     bool      `json:"amended"`
	CreatedAt   time.Time `json:"created_at"`
}
