package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyClockIn_Boundaries(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	cases := []struct {
		name string
		at   time.Time
		want Status
	}{
		{"jam 9 pas", time.Date(2026, 8, 31, 9, 0, 0, 0, jakarta), StatusPresent},
		{"tepat di batas 09:15:00", time.Date(2026, 8, 31, 9, 15, 0, 0, jakarta), StatusPresent},
		{"satu detik lewat batas", time.Date(2026, 8, 31, 9, 15, 1, 0, jakarta), StatusLate},
		{"jam 10", time.Date(2026, 8, 31, 10, 0, 0, 0, jakarta), StatusLate},
		{"subuh", time.Date(2026, 8, 31, 5, 30, 0, 0, jakarta), StatusPresent},
		{"hampir tengah malam", time.Date(2026, 8, 31, 23, 59, 0, 0, jakarta), StatusLate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyClockIn(tc.at))
		})
	}
}

func TestClassifyClockIn_UsesWallClockOfLocation(t *testing.T) {
	jakarta, _ := time.LoadLocation("Asia/Jakarta")

	// 02:20 UTC = 09:20 WIB; yang menentukan adalah jam dinding lokal
	utc := time.Date(2026, 8, 31, 2, 20, 0, 0, time.UTC)
	assert.Equal(t, StatusPresent, ClassifyClockIn(utc))
	assert.Equal(t, StatusLate, ClassifyClockIn(utc.In(jakarta)))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Hadir", StatusPresent.Label())
	assert.Equal(t, "Terlambat", StatusLate.Label())
	assert.Equal(t, "Izin Setengah Hari", StatusPermissionHalfDay.Label())
	assert.Equal(t, "Izin Penuh Hari", StatusPermissionFullDay.Label())
	assert.Equal(t, "Sakit", StatusSick.Label())
	assert.Equal(t, "Cuti", StatusLeave.Label())
	assert.Equal(t, "Belum Absen", StatusNotClockedIn.Label())
}

func TestStatusIsLeave(t *testing.T) {
	assert.True(t, StatusPermissionHalfDay.IsLeave())
	assert.True(t, StatusPermissionFullDay.IsLeave())
	assert.True(t, StatusSick.IsLeave())
	assert.True(t, StatusLeave.IsLeave())
	assert.False(t, StatusPresent.IsLeave())
	assert.False(t, StatusLate.IsLeave())
	assert.False(t, StatusNotClockedIn.IsLeave())
}
