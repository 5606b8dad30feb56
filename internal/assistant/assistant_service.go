package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"go-presensi/internal/activity"

	"go.uber.org/zap"
)

const activityContextLimit = 20

// Generator adalah kemampuan minimal yang dibutuhkan dari klien AI.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, query string) (string, error)
}

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock
type Service interface {
	Chat(ctx context.Context, userID string, req ChatRequest) (ChatResponse, error)
}

type service struct {
	generator  Generator
	activities activity.Service
	logger     *zap.Logger
}

func NewService(generator Generator, activities activity.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	return &service{generator: generator, activities: activities, logger: l}
}

// Chat menjawab pertanyaan user dengan konteks riwayat aktivitas terbarunya.
// Kegagalan layanan AI tidak mengembalikan error 5xx; user menerima pesan
// fallback yang ramah.
func (s *service) Chat(ctx context.Context, userID string, req ChatRequest) (ChatResponse, error) {
	feed, err := s.activities.Aggregate(ctx, userID, activityContextLimit)
	if err != nil {
		return ChatResponse{}, err
	}

	instruction := buildSystemInstruction(feed)

	answer, err := s.generator.Generate(ctx, instruction, req.Query)
	if err != nil {
		s.logger.Error("assistant generation failed", zap.String("user_id", userID), zap.Error(err))
		return ChatResponse{Answer: "Terjadi kesalahan saat menghubungi asisten AI."}, nil
	}
	if answer == "" {
		answer = "Maaf, saya tidak bisa memberikan jawaban saat ini."
	}

	return ChatResponse{Answer: answer}, nil
}

func buildSystemInstruction(feed []activity.CombinedActivity) string {
	history, err := json.Marshal(feed)
	if err != nil {
		history = []byte("[]")
	}

	return fmt.Sprintf(`You are a professional HR assistant for an employee attendance app.
Based on the user's recent activity history provided, answer their questions accurately.
Activity Data: %s
Tone: Friendly, professional, concise.
Answer in Indonesian.
Keep answers helpful for attendance and leave questions.`, history)
}
