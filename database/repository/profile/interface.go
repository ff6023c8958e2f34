package profileRepo

import (
	"context"

	"nutribook/models"
)

// ProfileRepository defines persistence for the free-form user profile
// records in the userProfiles collection, keyed by user id.
type ProfileRepository interface {
	// Get fetches the profile for a user. A user with no stored profile yet
	// gets an empty profile, not an error.
	Get(ctx context.Context, userID string) (*models.UserProfile, error)

	// Merge writes only the provided fields into the profile document,
	// creating it if absent. Unmentioned fields are left untouched.
	Merge(ctx context.Context, userID string, fields map[string]interface{}) error
}
