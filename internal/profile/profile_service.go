package profile

import (
	"context"
	"encoding/json"
	"time"

	profileerrors "go-presensi/internal/profile/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ProfileDetailPrefix = "profiles:detail:"
	profileCacheTTL     = 15 * time.Minute
)

func GetProfileDetailKey(userID string) string {
	return ProfileDetailPrefix + userID
}

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Me(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateMe(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Me(ctx context.Context, userID string) (ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidUserID
	}

	cacheKey := GetProfileDetailKey(userID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp ProfileResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight: satu query DB untuk banyak request bersamaan
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		row, err := s.repo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, profileerrors.ErrProfileNotFound
		}

		resp := mapToResponse(*row)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, profileCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ProfileResponse{}, err
	}

	return v.(ProfileResponse), nil
}

func (s *service) UpdateMe(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidUserID
	}

	row, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}
	if row == nil {
		// Profil dibuat lazy saat update pertama
		row = &Profile{ID: userUUID}
	}

	if req.FullName != nil {
		row.FullName = req.FullName
	}
	if req.Alias != nil {
		row.Alias = req.Alias
	}
	if req.AvatarURL != nil {
		row.AvatarURL = req.AvatarURL
	}
	if req.Position != nil {
		row.Position = req.Position
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		return ProfileResponse{}, err
	}

	// --- Invalidation Cache ---
	if s.rdb != nil {
		cacheKey := GetProfileDetailKey(userID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate profile cache",
				zap.String("cache_key", cacheKey),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("profile updated", zap.String("user_id", userID))
	return mapToResponse(*row), nil
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		Alias:     p.Alias,
		AvatarURL: p.AvatarURL,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
