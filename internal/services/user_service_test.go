package services

import (
	"context"
	"net/http"
	"testing"

	"weplanet/internal/cache"
	"weplanet/internal/config"
	"weplanet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(t *testing.T, userRepo *fakeUserRepo, activityRepo *fakeActivityRepo) UserService {
	t.Helper()
	cacheInstance, err := cache.New(&config.CacheConfig{Provider: "memory"}, zap.NewNop())
	require.NoError(t, err)
	return NewUserService(userRepo, activityRepo, cacheInstance, zap.NewNop())
}

func TestUserService_Me(t *testing.T) {
	userRepo := newFakeUserRepo()
	nickname := "anna"
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Email:    "anna@example.com",
		Nickname: &nickname,
	}))

	svc := newTestUserService(t, userRepo, &fakeActivityRepo{totalPoints: 45})

	me, err := svc.Me(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), me.UserID)
	assert.Equal(t, "anna@example.com", me.Email)
	require.NotNil(t, me.Nickname)
	assert.Equal(t, "anna", *me.Nickname)
	assert.Equal(t, int64(45), me.Points)
}

func TestUserService_Me_UnknownUser(t *testing.T) {
	svc := newTestUserService(t, newFakeUserRepo(), &fakeActivityRepo{})

	_, err := svc.Me(context.Background(), 99)
	require.Error(t, err)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, svcErr.GetStatusCode())
}

func TestUserService_Deactivate(t *testing.T) {
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &models.User{Email: "anna@example.com"}))

	svc := newTestUserService(t, userRepo, &fakeActivityRepo{})

	require.NoError(t, svc.Deactivate(context.Background(), 1))

	// The account no longer resolves, but the row is retained.
	user, err := userRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.True(t, userRepo.users[1].IsDeleted())

	// A second deactivation finds nothing.
	err = svc.Deactivate(context.Background(), 1)
	require.Error(t, err)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, svcErr.GetStatusCode())
}
