package attendance

type ClockInRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationName *string  `json:"location_name"`
	Notes        *string  `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	ClockIn      *string  `json:"clock_in,omitempty"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"status_label"`
	LocationName *string  `json:"location_name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// TodayResponse exposes the resolved session together with the two
// eligibility flags the client uses to enable its buttons.
type TodayResponse struct {
	Session     *AttendanceResponse `json:"session"`
	Status      string              `json:"status"`
	StatusLabel string              `json:"status_label"`
	CanClockIn  bool                `json:"can_clock_in"`
	CanClockOut bool                `json:"can_clock_out"`
}
