package activity

import (
	"time"

	"go-presensi/internal/attendance"
	"go-presensi/internal/slik"
)

const (
	TypeAttendance = "Absensi"
	TypeSlik       = "Slik"
)

// CombinedActivity adalah satu entri feed lintas sumber. Hanya salah satu
// dari Attendance/Slik yang terisi, sesuai Type.
type CombinedActivity struct {
	Type       string                         `json:"type"`
	Title      string                         `json:"title"`
	CreatedAt  time.Time                      `json:"created_at"`
	Attendance *attendance.AttendanceResponse `json:"attendance,omitempty"`
	Slik       *slik.SlikResponse             `json:"slik,omitempty"`
}
