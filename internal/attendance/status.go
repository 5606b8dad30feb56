package attendance

import "time"

// Status is the closed set of attendance states. Persisted values are
// assigned at write time and never recomputed by any background job.
type Status string

const (
	// StatusNotClockedIn is virtual: it describes a day with no record and
	// is never persisted.
	StatusNotClockedIn Status = "NOT_CLOCKED_IN"

	StatusPresent           Status = "PRESENT"
	StatusLate              Status = "LATE"
	StatusPermissionHalfDay Status = "PERMISSION_HALF_DAY"
	StatusPermissionFullDay Status = "PERMISSION_FULL_DAY"
	StatusSick              Status = "SICK"
	StatusLeave             Status = "LEAVE"
)

const (
	lateCutoffHour   = 9
	lateCutoffMinute = 15
)

// ClassifyClockIn maps a clock-in wall-clock time to PRESENT or LATE.
// Strictly after 09:15:00 local time is late: 09:15:00 itself is still
// present, 09:15:01 is not.
func ClassifyClockIn(t time.Time) Status {
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), lateCutoffHour, lateCutoffMinute, 0, 0, t.Location())
	if t.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// Label returns the display label shown in the app. Callers must branch on
// the Status constants, never on these labels.
func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "Hadir"
	case StatusLate:
		return "Terlambat"
	case StatusPermissionHalfDay:
		return "Izin Setengah Hari"
	case StatusPermissionFullDay:
		return "Izin Penuh Hari"
	case StatusSick:
		return "Sakit"
	case StatusLeave:
		return "Cuti"
	default:
		return "Belum Absen"
	}
}

// IsLeave reports whether the status marks a leave-type record, i.e. one
// created pre-closed by a leave submission.
func (s Status) IsLeave() bool {
	switch s {
	case StatusPermissionHalfDay, StatusPermissionFullDay, StatusSick, StatusLeave:
		return true
	default:
		return false
	}
}
