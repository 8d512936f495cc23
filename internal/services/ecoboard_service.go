// file: internal/services/ecoboard_service.go
package services

import (
	"context"
	"time"

	"weplanet/internal/repositories"

	"go.uber.org/zap"
)

// Grams of CO2 one cedar tree absorbs; divisor for the trees-equivalent
// display metric.
const gramsPerTree = 24

// ecoboardService implements EcoboardService over the ledger.
type ecoboardService struct {
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
}

// NewEcoboardService creates a new ecoboard service
func NewEcoboardService(activityRepo repositories.ActivityRepository, logger *zap.Logger) EcoboardService {
	return &ecoboardService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// MonthlySummary sums the user's CO2 reduction and completion count since
// the first of the month containing now. Users with no completions this
// month get an all-zero summary, never an error.
func (s *ecoboardService) MonthlySummary(ctx context.Context, userID int64, now time.Time) (*MonthlySummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	co2, missions, err := s.activityRepo.MonthlyTotals(ctx, userID, monthStart)
	if err != nil {
		return nil, NewInternalError("failed to aggregate monthly totals", err)
	}

	co2Grams := int64(co2)
	return &MonthlySummary{
		Month:        now.Format("2006-01"),
		Trees:        co2Grams / gramsPerTree, // floored, not rounded
		CO2Grams:     co2Grams,
		MissionsDone: missions,
	}, nil
}
