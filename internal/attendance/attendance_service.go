package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	attendanceerrors "go-presensi/internal/attendance/errors"
	"go-presensi/internal/events"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocationResolver turns device coordinates into a human-readable place
// name. Lookups are advisory: a failure never blocks an attendance action.
type LocationResolver interface {
	ReverseName(ctx context.Context, lat, lng float64) (string, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID string, req ClockOutRequest) (AttendanceResponse, error)
	Today(ctx context.Context, userID string) (TodayResponse, error)
	History(ctx context.Context, userID string) ([]AttendanceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	geocoder LocationResolver
	loc      *time.Location
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, loc *time.Location, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, loc, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	geocoder LocationResolver,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{db: db, repo: repo, outbox: outbox, geocoder: geocoder, loc: loc, logger: l}
}

func (s *service) ClockIn(ctx context.Context, userID string, req ClockInRequest) (AttendanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := time.Now().In(s.loc)
	locationName, lat, lng := s.snapshotLocation(ctx, req.LocationName, req.Latitude, req.Longitude)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	history, err := qtx.FindByUserAndDate(ctx, userID, now)
	if err != nil {
		s.logger.Error("clock-in history fetch failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if session := ResolveTodaySession(history, now); !CanClockIn(session) {
		metrics.AttendanceActions.WithLabelValues("clock_in", "rejected").Inc()
		s.logger.Warn("clock-in rejected, session already open",
			zap.String("user_id", userID),
			zap.String("open_record_id", session.ID.String()),
		)
		return AttendanceResponse{}, attendanceerrors.ErrSessionAlreadyOpen
	}

	clockIn := now.UTC()
	row := &Attendance{
		ID:           uuid.New(),
		UserID:       userUUID,
		Date:         dateOnly(now),
		ClockIn:      &clockIn,
		Status:       ClassifyClockIn(now),
		LocationName: locationName,
		Latitude:     lat,
		Longitude:    lng,
		Notes:        req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		metrics.AttendanceActions.WithLabelValues("clock_in", "error").Inc()
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, events.AttendanceEventClockIn, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock-in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	metrics.AttendanceActions.WithLabelValues("clock_in", "ok").Inc()
	s.logger.Info("clock-in recorded",
		zap.String("record_id", row.ID.String()),
		zap.String("user_id", userID),
		zap.String("status", string(row.Status)),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, userID string, req ClockOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := time.Now().In(s.loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	history, err := qtx.FindByUserAndDate(ctx, userID, now)
	if err != nil {
		s.logger.Error("clock-out history fetch failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	session := ResolveTodaySession(history, now)
	if !CanClockOut(session) {
		metrics.AttendanceActions.WithLabelValues("clock_out", "rejected").Inc()
		return AttendanceResponse{}, attendanceerrors.ErrNoOpenSession
	}

	clockOut := now.UTC()
	session.ClockOut = &clockOut
	if req.Notes != nil {
		session.Notes = req.Notes
	}

	if err := qtx.Update(ctx, session); err != nil {
		metrics.AttendanceActions.WithLabelValues("clock_out", "error").Inc()
		return AttendanceResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, events.AttendanceEventClockOut, session); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock-out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	metrics.AttendanceActions.WithLabelValues("clock_out", "ok").Inc()
	s.logger.Info("clock-out recorded",
		zap.String("record_id", session.ID.String()),
		zap.String("user_id", userID),
	)
	return mapToResponse(*session), nil
}

func (s *service) Today(ctx context.Context, userID string) (TodayResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return TodayResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := time.Now().In(s.loc)
	history, err := s.repo.FindByUserAndDate(ctx, userID, now)
	if err != nil {
		return TodayResponse{}, err
	}

	session := ResolveTodaySession(history, now)
	resp := TodayResponse{
		Status:      string(StatusNotClockedIn),
		StatusLabel: StatusNotClockedIn.Label(),
		CanClockIn:  CanClockIn(session),
		CanClockOut: CanClockOut(session),
	}
	if session != nil {
		mapped := mapToResponse(*session)
		resp.Session = &mapped
		resp.Status = string(session.Status)
		resp.StatusLabel = session.Status.Label()
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, userID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, attendanceerrors.ErrInvalidUserID
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// snapshotLocation resolves the best-effort place name for the action.
// Priority: client-supplied name, reverse geocode, bare coordinates. All
// failures degrade, none propagate.
func (s *service) snapshotLocation(ctx context.Context, name *string, lat, lng *float64) (*string, *float64, *float64) {
	if name != nil && *name != "" {
		return name, lat, lng
	}
	if lat == nil || lng == nil {
		return nil, nil, nil
	}

	fallback := fmt.Sprintf("%.4f, %.4f", *lat, *lng)
	resolved := fallback
	if s.geocoder != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if place, err := s.geocoder.ReverseName(lookupCtx, *lat, *lng); err == nil && place != "" {
			resolved = place
		} else if err != nil {
			s.logger.Warn("reverse geocode failed, using coordinates", zap.Error(err))
		}
	}
	return &resolved, lat, lng
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, eventType string, row *Attendance) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AttendanceRecordedEvent{
		EventType:  eventType,
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
		EventType:     eventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
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
	return resp
}
