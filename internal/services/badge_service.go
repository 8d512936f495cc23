// file: internal/services/badge_service.go
package services

import (
	"context"
	"time"

	"weplanet/internal/cache"
	"weplanet/internal/repositories"

	"go.uber.org/zap"
)

const (
	badgeCatalogCacheKey = "badges:catalog"
	badgeCatalogCacheTTL = 15 * time.Minute
)

// badgeService implements BadgeService. The catalog is immutable at
// runtime, so the listing is served from cache after the first load.
type badgeService struct {
	badgeRepo    repositories.BadgeRepository
	activityRepo repositories.ActivityRepository
	cache        cache.Cache
	logger       *zap.Logger
}

// NewBadgeService creates a new badge service
func NewBadgeService(
	badgeRepo repositories.BadgeRepository,
	activityRepo repositories.ActivityRepository,
	cacheInstance cache.Cache,
	logger *zap.Logger,
) BadgeService {
	return &badgeService{
		badgeRepo:    badgeRepo,
		activityRepo: activityRepo,
		cache:        cacheInstance,
		logger:       logger,
	}
}

// ListBadges returns the badge catalog in unlock order. Each entry's
// unlock order equals its badge ID.
func (s *badgeService) ListBadges(ctx context.Context) ([]*BadgeListEntry, error) {
	var cached []*BadgeListEntry
	if hit, err := s.cache.Get(ctx, badgeCatalogCacheKey, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("Badge catalog cache read failed", zap.Error(err))
	}

	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, NewInternalError("failed to load badge catalog", err)
	}

	entries := make([]*BadgeListEntry, 0, len(badges))
	for _, b := range badges {
		entries = append(entries, &BadgeListEntry{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Category:    b.Category,
			Image:       b.Image,
			UnlockOrder: b.ID,
		})
	}

	if err := s.cache.Set(ctx, badgeCatalogCacheKey, entries, badgeCatalogCacheTTL); err != nil {
		s.logger.Warn("Badge catalog cache write failed", zap.Error(err))
	}
	return entries, nil
}

// BadgeProgress returns the user's count-derived progression. Points and
// CO2 totals are intentionally zero in this view.
func (s *badgeService) BadgeProgress(ctx context.Context, userID int64) (*BadgeProgress, error) {
	count, err := s.activityRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to count completions", err)
	}

	return &BadgeProgress{
		CurrentBadgeCount:      count,
		TotalPoints:            0,
		TotalCO2Reduction:      0,
		TotalMissionsCompleted: count,
	}, nil
}
