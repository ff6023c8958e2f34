package profile

import (
	"context"
	"testing"
	"time"

	"nutribook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProfileRepo counts reads and records merged fields.
type mockProfileRepo struct {
	profile    models.UserProfile
	getCalls   int
	mergeCalls []map[string]interface{}
}

func (m *mockProfileRepo) Get(context.Context, string) (*models.UserProfile, error) {
	m.getCalls++
	prof := m.profile
	return &prof, nil
}

func (m *mockProfileRepo) Merge(_ context.Context, _ string, fields map[string]interface{}) error {
	m.mergeCalls = append(m.mergeCalls, fields)
	for k, v := range fields {
		if k == "displayName" {
			m.profile.DisplayName = v.(string)
		}
	}
	return nil
}

func newTestService(t *testing.T, repo *mockProfileRepo) *DefaultProfileService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultProfileService{
		Repo:     repo,
		Cache:    client,
		CacheTTL: time.Minute,
	}
}

func TestGetProfile_ReadThroughCache(t *testing.T) {
	repo := &mockProfileRepo{profile: models.UserProfile{DisplayName: "Asha"}}
	svc := newTestService(t, repo)

	first, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", first.DisplayName)
	assert.Equal(t, 1, repo.getCalls)

	// Second read is served from cache.
	second, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", second.DisplayName)
	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdateProfile_InvalidatesCache(t *testing.T) {
	repo := &mockProfileRepo{profile: models.UserProfile{DisplayName: "Asha"}}
	svc := newTestService(t, repo)

	_, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, repo.getCalls)

	updated, err := svc.UpdateProfile(context.Background(), "user-1", map[string]interface{}{
		"displayName": "Asha Rao",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", updated.DisplayName)

	// The stale cache entry is gone; the next read goes to the store.
	getCallsBefore := repo.getCalls
	_, err = svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, getCallsBefore+1, repo.getCalls)
}

func TestUpdateProfile_DropsUnknownFields(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := newTestService(t, repo)

	_, err := svc.UpdateProfile(context.Background(), "user-1", map[string]interface{}{
		"goals":   "reduce cholesterol",
		"isAdmin": true,
	})
	require.NoError(t, err)

	require.Len(t, repo.mergeCalls, 1)
	assert.Contains(t, repo.mergeCalls[0], "goals")
	assert.NotContains(t, repo.mergeCalls[0], "isAdmin")
}

func TestUpdateProfile_RejectsEmptyUpdate(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := newTestService(t, repo)

	_, err := svc.UpdateProfile(context.Background(), "user-1", map[string]interface{}{
		"isAdmin": true,
	})
	require.ErrorIs(t, err, ErrNoUpdatableFields)
	assert.Empty(t, repo.mergeCalls)
}
