package leave

import (
	"fmt"
	"time"

	"go-presensi/internal/attendance"
)

// Category adalah jenis pengajuan absen yang dikirim klien.
type Category string

const (
	CategoryPermissionHalfDay Category = "PERMISSION_HALF_DAY"
	CategoryPermissionFullDay Category = "PERMISSION_FULL_DAY"
	CategorySick              Category = "SICK"
	CategoryLeave             Category = "LEAVE"
)

// Status memetakan kategori pengajuan ke status absensi. Kategori tidak
// dikenal mengembalikan false.
func (c Category) Status() (attendance.Status, bool) {
	switch c {
	case CategoryPermissionHalfDay:
		return attendance.StatusPermissionHalfDay, true
	case CategoryPermissionFullDay:
		return attendance.StatusPermissionFullDay, true
	case CategorySick:
		return attendance.StatusSick, true
	case CategoryLeave:
		return attendance.StatusLeave, true
	default:
		return "", false
	}
}

// RequiresDateRange: sakit dan cuti butuh tanggal mulai; izin berlaku hari itu
// juga.
func (c Category) RequiresDateRange() bool {
	return c == CategorySick || c == CategoryLeave
}

// LocationSnapshot adalah potret lokasi perangkat saat pengajuan dikirim.
// Semua field boleh kosong; pengajuan tetap jalan tanpa lokasi.
type LocationSnapshot struct {
	Name      *string
	Latitude  *float64
	Longitude *float64
}

// BuildRecord menyusun satu record absensi siap simpan dari pengajuan izin,
// sakit, atau cuti. Record dibuat dalam keadaan tertutup: clock_in dan
// clock_out sama-sama diisi stempel waktu pengajuan, sehingga tidak pernah
// dianggap sesi terbuka oleh resolver.
func BuildRecord(category Category, purpose string, start, end *time.Time, loc LocationSnapshot, now time.Time) (attendance.Attendance, error) {
	status, ok := category.Status()
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("unknown leave category %q", category)
	}

	date := now
	if start != nil {
		date = *start
	}

	submittedAt := now.UTC()
	notes := composeNotes(purpose, start, end)

	return attendance.Attendance{
		Date:         time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		ClockIn:      &submittedAt,
		ClockOut:     &submittedAt,
		Status:       status,
		Notes:        &notes,
		LocationName: loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
	}, nil
}

// composeNotes menggabungkan keperluan dan rentang tanggal (jika ada) menjadi
// satu teks catatan.
func composeNotes(purpose string, start, end *time.Time) string {
	if start == nil {
		return purpose
	}
	if end == nil || end.Equal(*start) {
		return fmt.Sprintf("%s (%s)", purpose, start.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s (%s s/d %s)", purpose, start.Format("2006-01-02"), end.Format("2006-01-02"))
}
