package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-presensi/internal/attendance"
	attendanceerrors "go-presensi/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	clockInFn  func(ctx context.Context, userID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	clockOutFn func(ctx context.Context, userID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error)
	todayFn    func(ctx context.Context, userID string) (attendance.TodayResponse, error)
	historyFn  func(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) ClockIn(ctx context.Context, userID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInFn(ctx, userID, req)
}
func (f *fakeService) ClockOut(ctx context.Context, userID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return f.clockOutFn(ctx, userID, req)
}
func (f *fakeService) Today(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	return f.todayFn(ctx, userID)
}
func (f *fakeService) History(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	return f.historyFn(ctx, userID)
}

func TestHandler_ClockInAndHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		clockInFn: func(ctx context.Context, uid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, userID, uid)
			return attendance.AttendanceResponse{ID: uuid.New().String(), UserID: uid, Status: "PRESENT"}, nil
		},
		historyFn: func(ctx context.Context, uid string) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "PRESENT")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("user_id", userID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendances?page=1&page_size=1", nil)
	h.History(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
}

func TestHandler_ClockIn_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		clockInFn: func(ctx context.Context, uid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrSessionAlreadyOpen
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ClockOut_NoOpenSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		clockOutFn: func(ctx context.Context, uid string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrNoOpenSession
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-out", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockOut(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClockIn_CachesResponseAndReleasesLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()
	userID := uuid.New().String()

	resp := attendance.AttendanceResponse{ID: uuid.New().String(), UserID: userID, Status: "PRESENT"}
	svc := &fakeService{
		clockInFn: func(ctx context.Context, uid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			return resp, nil
		},
	}

	h := attendance.NewHandlerWithRedis(svc, rdb)

	cacheKey := "idemp:/api/v1/attendances/clock-in:" + userID + ":key-1"
	lockKey := cacheKey + ":lock"
	payload, _ := json.Marshal(resp)

	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_ClockIn_ReleasesLockWithoutCachingOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()
	userID := uuid.New().String()

	svc := &fakeService{
		clockInFn: func(ctx context.Context, uid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrSessionAlreadyOpen
		},
	}

	h := attendance.NewHandlerWithRedis(svc, rdb)

	cacheKey := "idemp:/api/v1/attendances/clock-in:" + userID + ":key-1"
	lockKey := cacheKey + ":lock"

	mock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Today(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		todayFn: func(ctx context.Context, uid string) (attendance.TodayResponse, error) {
			return attendance.TodayResponse{
				Status:      "NOT_CLOCKED_IN",
				StatusLabel: "Belum Absen",
				CanClockIn:  true,
			}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/today", nil)
	h.Today(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Belum Absen")
	assert.Contains(t, w.Body.String(), "\"can_clock_in\":true")
}
