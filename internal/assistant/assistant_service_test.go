package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-presensi/internal/activity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	fn func(ctx context.Context, systemInstruction, query string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, systemInstruction, query string) (string, error) {
	return f.fn(ctx, systemInstruction, query)
}

type fakeActivityService struct {
	fn func(ctx context.Context, userID string, limit int) ([]activity.CombinedActivity, error)
}

func (f *fakeActivityService) Aggregate(ctx context.Context, userID string, limit int) ([]activity.CombinedActivity, error) {
	return f.fn(ctx, userID, limit)
}

func TestService_Chat_IncludesActivityContext(t *testing.T) {
	userID := uuid.New().String()

	feed := []activity.CombinedActivity{
		{Type: activity.TypeAttendance, Title: "Absensi: Hadir", CreatedAt: time.Now()},
	}

	gen := &fakeGenerator{fn: func(ctx context.Context, instruction, query string) (string, error) {
		assert.Contains(t, instruction, "Absensi: Hadir")
		assert.Equal(t, "Jam berapa saya absen hari ini?", query)
		return "Anda absen pukul 08:30.", nil
	}}
	activities := &fakeActivityService{fn: func(ctx context.Context, uid string, limit int) ([]activity.CombinedActivity, error) {
		assert.Equal(t, userID, uid)
		return feed, nil
	}}

	svc := NewService(gen, activities)

	resp, err := svc.Chat(context.Background(), userID, ChatRequest{Query: "Jam berapa saya absen hari ini?"})
	assert.NoError(t, err)
	assert.Equal(t, "Anda absen pukul 08:30.", resp.Answer)
}

func TestService_Chat_FallbackOnGeneratorError(t *testing.T) {
	gen := &fakeGenerator{fn: func(ctx context.Context, instruction, query string) (string, error) {
		return "", errors.New("upstream timeout")
	}}
	activities := &fakeActivityService{fn: func(ctx context.Context, uid string, limit int) ([]activity.CombinedActivity, error) {
		return nil, nil
	}}

	svc := NewService(gen, activities)

	resp, err := svc.Chat(context.Background(), uuid.New().String(), ChatRequest{Query: "halo"})
	assert.NoError(t, err)
	assert.Equal(t, "Terjadi kesalahan saat menghubungi asisten AI.", resp.Answer)
}

func TestService_Chat_PropagatesAggregationError(t *testing.T) {
	boom := errors.New("db down")

	gen := &fakeGenerator{fn: func(ctx context.Context, instruction, query string) (string, error) {
		t.Fatal("generator should not be called")
		return "", nil
	}}
	activities := &fakeActivityService{fn: func(ctx context.Context, uid string, limit int) ([]activity.CombinedActivity, error) {
		return nil, boom
	}}

	svc := NewService(gen, activities)

	_, err := svc.Chat(context.Background(), uuid.New().String(), ChatRequest{Query: "halo"})
	assert.ErrorIs(t, err, boom)
}
