// file: internal/services/mission_service.go
package services

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"weplanet/internal/models"
	"weplanet/internal/repositories"

	"go.uber.org/zap"
)

// missionService implements MissionService. CompleteMission is the only
// state transition in the system: it appends exactly one ledger entry and
// never mutates users, missions or badges.
type missionService struct {
	missionRepo  repositories.MissionRepository
	badgeRepo    repositories.BadgeRepository
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewMissionService creates a new mission service
func NewMissionService(
	missionRepo repositories.MissionRepository,
	badgeRepo repositories.BadgeRepository,
	activityRepo repositories.ActivityRepository,
	logger *zap.Logger,
) MissionService {
	return &missionService{
		missionRepo:  missionRepo,
		badgeRepo:    badgeRepo,
		activityRepo: activityRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// PickDailyMission returns one mission chosen uniformly at random. The
// selection is not pinned to the calendar day: two calls on the same day
// can return different missions.
func (s *missionService) PickDailyMission(ctx context.Context) (*models.Mission, error) {
	missions, err := s.missionRepo.List(ctx)
	if err != nil {
		return nil, NewInternalError("failed to load mission catalog", err)
	}
	if len(missions) == 0 {
		return nil, NewNotFoundError("no missions found")
	}
	return missions[rand.Intn(len(missions))], nil
}

// CompleteMission records one completion and decides the badge award from
// the count-derived progression state. The count read, badge decision and
// ledger insert run in a single transaction with a per-user advisory lock,
// so concurrent completions by the same user cannot both be awarded the
// same badge ID.
func (s *missionService) CompleteMission(ctx context.Context, userID, missionID int64) (*CompletionResult, error) {
	mission, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return nil, NewInternalError("failed to load mission", err)
	}
	if mission == nil {
		return nil, NewNotFoundError("Mission not found")
	}

	maxBadgeID, err := s.badgeRepo.MaxID(ctx)
	if err != nil {
		return nil, NewInternalError("failed to load badge catalog", err)
	}

	tx, err := s.activityRepo.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := s.activityRepo.LockUserLedger(ctx, tx, userID); err != nil {
		return nil, NewInternalError("failed to serialize completion", err)
	}

	completedCount, err := s.activityRepo.CountByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, NewInternalError("failed to read progression state", err)
	}

	progression := models.ProgressionState{CompletedCount: completedCount}
	nextBadgeID := progression.NextBadgeID(maxBadgeID)

	var badge *models.Badge
	if nextBadgeID != nil {
		// Catalog IDs are dense, so the candidate must exist; the lookup
		// fills in name and image for the result.
		badge, err = s.badgeRepo.GetByID(ctx, *nextBadgeID)
		if err != nil {
			return nil, NewInternalError("failed to load badge", err)
		}
	}

	activity := &models.Activity{
		UserID:      userID,
		MissionID:   mission.ID,
		CompletedAt: s.now(),
	}
	if badge != nil {
		activity.BadgeID = &badge.ID
	}

	if err := s.activityRepo.CreateTx(ctx, tx, activity); err != nil {
		return nil, NewInternalError("failed to record completion", err)
	}

	// The insert must be durable before the result is observable.
	if err := tx.Commit(); err != nil {
		return nil, NewInternalError("failed to commit completion", err)
	}

	s.logger.Info("Mission completed",
		zap.Int64("user_id", userID),
		zap.Int64("mission_id", mission.ID),
		zap.Int64("completed_count", completedCount),
		zap.Any("badge_id", activity.BadgeID),
	)

	result := &CompletionResult{
		Message:   "Mission completed",
		MissionID: mission.ID,
		Point:     mission.Point,
		CO2:       mission.CO2Reduction,
	}
	if badge != nil {
		result.Badge = &BadgeAward{ID: badge.ID, Name: badge.Name, Image: badge.Image}
	}
	return result, nil
}
