package activity

import (
	"context"
	"fmt"
	"sort"
	"time"

	activityerrors "go-presensi/internal/activity/errors"
	"go-presensi/internal/attendance"
	"go-presensi/internal/shared/metrics"
	"go-presensi/internal/slik"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// AttendanceSource dan SlikSource adalah irisan repo yang dibutuhkan
// aggregator. Keduanya dipenuhi oleh repository masing-masing paket.
type AttendanceSource interface {
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error)
}

type SlikSource interface {
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]slik.SlikKTP, error)
}

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	Aggregate(ctx context.Context, userID string, limit int) ([]CombinedActivity, error)
}

type service struct {
	attendances AttendanceSource
	sliks       SlikSource
	logger      *zap.Logger
}

func NewService(attendances AttendanceSource, sliks SlikSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("activity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.service")
	}
	return &service{attendances: attendances, sliks: sliks, logger: l}
}

// Aggregate mengembalikan maksimal limit aktivitas terbaru lintas sumber,
// terurut menurun berdasarkan created_at. Kedua sumber diambil paralel dan
// masing-masing sudah dibatasi limit, sehingga hasil merge tetap top-limit
// global yang benar. Kegagalan salah satu sumber menggagalkan seluruh
// agregasi.
func (s *service) Aggregate(ctx context.Context, userID string, limit int) ([]CombinedActivity, error) {
	if _, err := uuid.Parse(userID); err != nil {
		metrics.ActivityFeedRequests.WithLabelValues("rejected").Inc()
		return nil, activityerrors.ErrInvalidUserID
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var (
		attendanceRows []attendance.Attendance
		slikRows       []slik.SlikKTP
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.attendances.FindRecentByUser(gctx, userID, limit)
		if err != nil {
			return fmt.Errorf("fetch attendance activity: %w", err)
		}
		attendanceRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.sliks.FindRecentByUser(gctx, userID, limit)
		if err != nil {
			return fmt.Errorf("fetch slik activity: %w", err)
		}
		slikRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.ActivityFeedRequests.WithLabelValues("error").Inc()
		s.logger.Error("activity aggregation failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	combined := make([]CombinedActivity, 0, len(attendanceRows)+len(slikRows))
	for i := range attendanceRows {
		combined = append(combined, mapAttendanceActivity(attendanceRows[i]))
	}
	for i := range slikRows {
		combined = append(combined, mapSlikActivity(slikRows[i]))
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].CreatedAt.After(combined[j].CreatedAt)
	})
	if len(combined) > limit {
		combined = combined[:limit]
	}

	metrics.ActivityFeedRequests.WithLabelValues("ok").Inc()
	return combined, nil
}

func mapAttendanceActivity(a attendance.Attendance) CombinedActivity {
	resp := attendance.AttendanceResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		StatusLabel:  a.Status.Label(),
		LocationName: a.LocationName,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}

	return CombinedActivity{
		Type:       TypeAttendance,
		Title:      "Absensi: " + a.Status.Label(),
		CreatedAt:  a.CreatedAt,
		Attendance: &resp,
	}
}

func mapSlikActivity(row slik.SlikKTP) CombinedActivity {
	name := "Tanpa Nama"
	if row.NamaLengkap != nil && *row.NamaLengkap != "" {
		name = *row.NamaLengkap
	}

	resp := slik.SlikResponse{
		ID:               row.ID.String(),
		NIK:              row.NIK,
		NamaLengkap:      row.NamaLengkap,
		TempatLahir:      row.TempatLahir,
		TanggalLahir:     row.TanggalLahir,
		JenisKelamin:     row.JenisKelamin,
		Alamat:           row.Alamat,
		RtRw:             row.RtRw,
		KelDesa:          row.KelDesa,
		Kecamatan:        row.Kecamatan,
		Agama:            row.Agama,
		StatusPerkawinan: row.StatusPerkawinan,
		Pekerjaan:        row.Pekerjaan,
		Kewarganegaraan:  row.Kewarganegaraan,
		BerlakuHingga:    row.BerlakuHingga,
		CreatedAt:        row.CreatedAt,
	}

	return CombinedActivity{
		Type:      TypeSlik,
		Title:     "SLIK: " + name,
		CreatedAt: row.CreatedAt,
		Slik:      &resp,
	}
}
