package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-presensi/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, a *Attendance) error
	updateFn            func(ctx context.Context, a *Attendance) error
	findAllByUserFn     func(ctx context.Context, userID string) ([]Attendance, error)
	findByUserAndDateFn func(ctx context.Context, userID string, date time.Time) ([]Attendance, error)
	findRecentByUserFn  func(ctx context.Context, userID string, limit int) ([]Attendance, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                    { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string) ([]Attendance, error) {
	return f.findAllByUserFn(ctx, userID)
}
func (f *fakeRepo) FindByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
	return f.findByUserAndDateFn(ctx, userID, date)
}
func (f *fakeRepo) FindRecentByUser(ctx context.Context, userID string, limit int) ([]Attendance, error) {
	return f.findRecentByUserFn(ctx, userID, limit)
}

func newPassthroughRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findAllByUserFn = func(ctx context.Context, userID string) ([]Attendance, error) { return nil, nil }
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
		return nil, nil
	}
	repo.findRecentByUserFn = func(ctx context.Context, userID string, limit int) ([]Attendance, error) {
		return nil, nil
	}
	return repo
}

func TestService_ClockInAndClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	ctx := context.Background()

	var saved []Attendance
	repo := newPassthroughRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		a.CreatedAt = time.Now().UTC()
		saved = append(saved, *a)
		return nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error {
		saved[len(saved)-1] = *a
		return nil
	}
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
		return saved, nil
	}

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, userID, ClockInRequest{})
	assert.NoError(t, err)
	assert.NotEmpty(t, inResp.ID)
	assert.NotNil(t, inResp.ClockIn)
	assert.Nil(t, inResp.ClockOut)
	assert.Contains(t, []string{"PRESENT", "LATE"}, inResp.Status)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, userID, ClockOutRequest{})
	assert.NoError(t, err)
	assert.Equal(t, inResp.ID, outResp.ID)
	assert.NotNil(t, outResp.ClockOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_RejectedWhileSessionOpen(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	now := time.Now().UTC()

	repo := newPassthroughRepo()
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
		return []Attendance{{
			ID:        uuid.New(),
			Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			CreatedAt: now.Add(-time.Hour),
		}}, nil
	}

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(context.Background(), userID, ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionAlreadyOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_AllowedAfterClosedSession(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	now := time.Now().UTC()
	closedAt := now.Add(-2 * time.Hour)

	repo := newPassthroughRepo()
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
		return []Attendance{{
			ID:        uuid.New(),
			Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			CreatedAt: now.Add(-3 * time.Hour),
			ClockOut:  &closedAt,
		}}, nil
	}

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), userID, ClockInRequest{})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_UniqueIndexRace(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newPassthroughRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_open_session"}
	}

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(context.Background(), uuid.New().String(), ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionAlreadyOpen)
}

func TestService_ClockOut_RequiresOpenSession(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newPassthroughRepo()

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), uuid.New().String(), ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenSession)
}

func TestService_ClockIn_UsesClientLocationName(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	name := "Menara BCA, Jakarta Pusat"
	lat, lng := -6.1944, 106.8229

	var saved Attendance
	repo := newPassthroughRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.ClockIn(context.Background(), uuid.New().String(), ClockInRequest{
		LocationName: &name,
		Latitude:     &lat,
		Longitude:    &lng,
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved.LocationName)
	assert.Equal(t, name, *saved.LocationName)
}

func TestService_ClockIn_FallsBackToCoordinates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	lat, lng := -6.1944, 106.8229

	var saved Attendance
	repo := newPassthroughRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	// Tanpa geocoder: nama lokasi jatuh ke koordinat mentah
	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.ClockIn(context.Background(), uuid.New().String(), ClockInRequest{
		Latitude:  &lat,
		Longitude: &lng,
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved.LocationName)
	assert.Equal(t, "-6.1944, 106.8229", *saved.LocationName)
}

func TestService_Today(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	now := time.Now().UTC()

	repo := newPassthroughRepo()
	svc := NewService(db, repo, time.UTC)

	// Belum ada record sama sekali
	resp, err := svc.Today(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, resp.Session)
	assert.Equal(t, "NOT_CLOCKED_IN", resp.Status)
	assert.Equal(t, "Belum Absen", resp.StatusLabel)
	assert.True(t, resp.CanClockIn)
	assert.False(t, resp.CanClockOut)

	// Ada sesi terbuka
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) ([]Attendance, error) {
		clockIn := now.Add(-time.Hour)
		return []Attendance{{
			ID:        uuid.New(),
			Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			ClockIn:   &clockIn,
			Status:    StatusPresent,
			CreatedAt: clockIn,
		}}, nil
	}
	resp, err = svc.Today(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, resp.Session)
	assert.Equal(t, "PRESENT", resp.Status)
	assert.False(t, resp.CanClockIn)
	assert.True(t, resp.CanClockOut)
}

func TestService_InvalidUserID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newPassthroughRepo(), time.UTC)

	_, err := svc.ClockIn(context.Background(), "bukan-uuid", ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidUserID)

	_, err = svc.ClockOut(context.Background(), "bukan-uuid", ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidUserID)

	_, err = svc.Today(context.Background(), "bukan-uuid")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidUserID)

	_, err = svc.History(context.Background(), "bukan-uuid")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidUserID)
}
