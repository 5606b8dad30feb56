package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-presensi/internal/attendance"
	"go-presensi/internal/events"
	leaveerrors "go-presensi/internal/leave/errors"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   attendance.Repository
	outbox kafka.OutboxRepository
	loc    *time.Location
	logger *zap.Logger
}

func NewService(db *sql.DB, repo attendance.Repository, outbox kafka.OutboxRepository, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{db: db, repo: repo, outbox: outbox, loc: loc, logger: l}
}

// Submit mencatat pengajuan izin/sakit/cuti sebagai satu record absensi
// tertutup. Jika record izin untuk hari ini sudah ada, pengajuan baru
// mengubah status dan catatannya alih-alih menambah baris baru.
func (s *service) Submit(ctx context.Context, userID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}

	category := Category(req.Category)
	status, ok := category.Status()
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrUnknownCategory
	}

	start, end, err := s.parseDateRange(category, req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().In(s.loc)
	record, err := BuildRecord(category, req.Purpose, start, end, LocationSnapshot{
		Name:      req.LocationName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, now)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrUnknownCategory
	}
	record.ID = uuid.New()
	record.UserID = userUUID

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave submit begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	history, err := qtx.FindByUserAndDate(ctx, userID, now)
	if err != nil {
		s.logger.Error("leave submit history fetch failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	amended := false
	session := attendance.ResolveTodaySession(history, now)
	if session != nil && session.Status.IsLeave() {
		// Amandemen: timpa status dan catatan record izin hari ini.
		session.Status = status
		session.Notes = record.Notes
		if err := qtx.Update(ctx, session); err != nil {
			metrics.AttendanceActions.WithLabelValues("leave", "error").Inc()
			return LeaveResponse{}, err
		}
		record = *session
		amended = true
	} else {
		if err := qtx.Create(ctx, &record); err != nil {
			metrics.AttendanceActions.WithLabelValues("leave", "error").Inc()
			return LeaveResponse{}, err
		}
	}

	if err := s.enqueueEvent(ctx, tx, &record); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave submit commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.AttendanceActions.WithLabelValues("leave", "ok").Inc()
	s.logger.Info("leave recorded",
		zap.String("record_id", record.ID.String()),
		zap.String("user_id", userID),
		zap.String("status", string(record.Status)),
		zap.Bool("amended", amended),
	)

	notes := ""
	if record.Notes != nil {
		notes = *record.Notes
	}
	return LeaveResponse{
		ID:          record.ID.String(),
		Date:        record.Date.Format("2006-01-02"),
		Status:      string(record.Status),
		StatusLabel: record.Status.Label(),
		Notes:       notes,
		Amended:     amended,
		CreatedAt:   record.CreatedAt,
	}, nil
}

func (s *service) parseDateRange(category Category, startStr, endStr *string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startStr != nil {
		t, err := time.ParseInLocation("2006-01-02", *startStr, s.loc)
		if err != nil {
			return nil, nil, leaveerrors.ErrDateRangeRequired
		}
		start = &t
	}
	if endStr != nil {
		t, err := time.ParseInLocation("2006-01-02", *endStr, s.loc)
		if err != nil {
			return nil, nil, leaveerrors.ErrInvalidDateRange
		}
		end = &t
	}

	if category.RequiresDateRange() && start == nil {
		return nil, nil, leaveerrors.ErrDateRangeRequired
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, row *attendance.Attendance) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AttendanceRecordedEvent{
		EventType:  events.AttendanceEventLeave,
		RecordID:   row.ID.String(),
		UserID:     row.UserID.String(),
		Status:     string(row.Status),
		Date:       row.Date.Format("2006-01-02"),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     events.AttendanceEventLeave,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
