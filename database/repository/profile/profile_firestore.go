package profileRepo

import (
	"context"
	"fmt"

	"nutribook/database"
	"nutribook/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profilesCollection = "userProfiles"

// FirestoreProfileRepo implements ProfileRepository using Firestore.
type FirestoreProfileRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreProfileRepo creates a new ProfileRepository backed by the
// "userProfiles" collection.
func NewFirestoreProfileRepo() ProfileRepository {
	return &FirestoreProfileRepo{
		coll: database.FirestoreClient.Collection(profilesCollection),
	}
}

func (r *FirestoreProfileRepo) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	snap, err := r.coll.Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &models.UserProfile{}, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *FirestoreProfileRepo) Merge(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if _, err := r.coll.Doc(userID).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to merge profile for user %s: %w", userID, err)
	}
	return nil
}
