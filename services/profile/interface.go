package profile

import (
	"context"

	"nutribook/models"
)

// ProfileService reads and merge-updates the free-form personal/health
// record kept per user. Profiles are never validated against availability.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserProfile, error)
}
