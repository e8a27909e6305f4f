package profile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	profileerrors "rikumates/internal/profile/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const profileDetailKeyPrefix = "profiles:detail:"

func profileDetailKey(id string) string {
	return profileDetailKeyPrefix + id
}

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, callerID, profileID string) (ProfileResponse, error)
	Update(ctx context.Context, callerID, profileID string, req UpdateProfileRequest) (ProfileResponse, error)
	Delete(ctx context.Context, callerID, profileID string) error
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

// Get serves from redis when possible; a miss falls through to the database
// behind a singleflight so concurrent misses share one query.
func (s *service) Get(ctx context.Context, callerID, profileID string) (ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidProfileID
	}
	if profileID != callerID {
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	cacheKey := profileDetailKey(profileID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp ProfileResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		prof, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ProfileResponse{}, profileerrors.ErrProfileNotFound
			}
			return ProfileResponse{}, err
		}

		resp := mapToResponse(*prof)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return ProfileResponse{}, err
	}

	return v.(ProfileResponse), nil
}

func (s *service) Update(ctx context.Context, callerID, profileID string, req UpdateProfileRequest) (ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidProfileID
	}
	if profileID != callerID {
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	prof, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, profileerrors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}

	prof.Name = req.Name
	prof.AvatarURL = req.AvatarURL
	prof.JobHuntType = req.JobHuntType

	if err := s.repo.Update(ctx, prof); err != nil {
		s.logger.Error("update profile persist failed",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return ProfileResponse{}, err
	}

	s.invalidate(ctx, profileID)

	return mapToResponse(*prof), nil
}

func (s *service) Delete(ctx context.Context, callerID, profileID string) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return profileerrors.ErrInvalidProfileID
	}
	if profileID != callerID {
		return profileerrors.ErrProfileNotFound
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profileerrors.ErrProfileNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, profileID)
	return nil
}

func (s *service) invalidate(ctx context.Context, profileID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := profileDetailKey(profileID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("invalidate profile cache failed",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		AvatarURL:   p.AvatarURL,
		JobHuntType: p.JobHuntType,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
