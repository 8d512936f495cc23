// file: internal/services/user_service.go
package services

import (
	"context"
	"fmt"

	"weplanet/internal/cache"
	"weplanet/internal/repositories"

	"go.uber.org/zap"
)

// userService implements UserService.
type userService struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	cache        cache.Cache
	logger       *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	cacheInstance cache.Cache,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		cache:        cacheInstance,
		logger:       logger,
	}
}

// Me returns the user's profile with lifetime points summed over the
// ledger×mission join.
func (s *userService) Me(ctx context.Context, userID int64) (*MeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, NewUnauthorizedError("user not found")
	}

	points, err := s.activityRepo.TotalPoints(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to sum points", err)
	}

	return &MeResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		BadgeID:  user.BadgeID,
		Points:   points,
	}, nil
}

// Deactivate soft-deletes the user. Ledger rows are retained; the user
// simply stops resolving in active-user lookups.
func (s *userService) Deactivate(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return NewInternalError("failed to load user", err)
	}
	if user == nil {
		return NewNotFoundError("user not found")
	}

	if err := s.userRepo.SoftDelete(ctx, userID); err != nil {
		return NewInternalError("failed to deactivate user", err)
	}

	// Drop the auth middleware's cached copy so the deactivation takes
	// effect immediately, not after the cache TTL.
	if err := s.cache.Delete(ctx, fmt.Sprintf("user:%d", userID)); err != nil {
		s.logger.Warn("User cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("User deactivated", zap.Int64("user_id", userID))
	return nil
}
