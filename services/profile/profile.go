package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	profileRepo "nutribook/database/repository/profile"
	"nutribook/models"
	"nutribook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrNoUpdatableFields is returned when an update payload carries no
// recognized profile field.
var ErrNoUpdatableFields = errors.New("no updatable fields provided")

// allowedFields are the profile keys a client may set. Anything else in the
// payload is dropped before the merge write.
var allowedFields = map[string]bool{
	"displayName":        true,
	"email":              true,
	"phoneNumber":        true,
	"address":            true,
	"dateOfBirth":        true,
	"gender":             true,
	"height":             true,
	"weight":             true,
	"dietaryPreferences": true,
	"allergies":          true,
	"medicalConditions":  true,
	"goals":              true,
	"fcmToken":           true,
}

// DefaultProfileService implements ProfileService with a redis read-through
// cache in front of the document store.
type DefaultProfileService struct {
	Repo     profileRepo.ProfileRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

func cacheKey(userID string) string {
	return "profile:" + userID
}

func (s *DefaultProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey(userID)).Result(); err == nil {
			var cached models.UserProfile
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			logger.Warn("dropping corrupt cached profile", zap.String("userId", userID))
		}
	}

	prof, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(prof); err == nil {
			if err := s.Cache.Set(ctx, cacheKey(userID), raw, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache profile", zap.String("userId", userID), zap.Error(err))
			}
		}
	}
	return prof, nil
}

// UpdateProfile merge-writes the provided fields and returns the refreshed
// record. The cache entry is invalidated so the next read goes to the store.
func (s *DefaultProfileService) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserProfile, error) {
	logger := utils.GetLogger()

	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if allowedFields[k] {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := s.Repo.Merge(ctx, userID, updates); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, cacheKey(userID)).Err(); err != nil {
			logger.Warn("failed to invalidate profile cache", zap.String("userId", userID), zap.Error(err))
		}
	}

	return s.Repo.Get(ctx, userID)
}
