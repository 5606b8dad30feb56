package events

import "time"

const AttendanceRecordedTopic = "presensi.attendance.recorded.v1"

const (
	AttendanceEventClockIn  = "attendance.clock_in"
	AttendanceEventClockOut = "attendance.clock_out"
	AttendanceEventLeave    = "attendance.leave_submitted"
)

type AttendanceRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
