package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEcoboardService_MonthlySummary(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	t.Run("trees floor division", func(t *testing.T) {
		activityRepo := &fakeActivityRepo{monthlyCO2: 100, monthlyMissions: 4}
		svc := NewEcoboardService(activityRepo, zap.NewNop())

		summary, err := svc.MonthlySummary(context.Background(), 1, now)
		require.NoError(t, err)

		// 100g / 24g per tree = 4, floored.
		assert.Equal(t, "2025-03", summary.Month)
		assert.Equal(t, int64(4), summary.Trees)
		assert.Equal(t, int64(100), summary.CO2Grams)
		assert.Equal(t, int64(4), summary.MissionsDone)
	})

	t.Run("below one tree", func(t *testing.T) {
		activityRepo := &fakeActivityRepo{monthlyCO2: 23, monthlyMissions: 1}
		svc := NewEcoboardService(activityRepo, zap.NewNop())

		summary, err := svc.MonthlySummary(context.Background(), 1, now)
		require.NoError(t, err)

		assert.Equal(t, int64(0), summary.Trees)
		assert.Equal(t, int64(23), summary.CO2Grams)
	})

	t.Run("fractional grams truncate before division", func(t *testing.T) {
		activityRepo := &fakeActivityRepo{monthlyCO2: 47.9, monthlyMissions: 2}
		svc := NewEcoboardService(activityRepo, zap.NewNop())

		summary, err := svc.MonthlySummary(context.Background(), 1, now)
		require.NoError(t, err)

		assert.Equal(t, int64(47), summary.CO2Grams)
		assert.Equal(t, int64(1), summary.Trees)
	})

	t.Run("empty month is all zeros", func(t *testing.T) {
		activityRepo := &fakeActivityRepo{}
		svc := NewEcoboardService(activityRepo, zap.NewNop())

		summary, err := svc.MonthlySummary(context.Background(), 1, now)
		require.NoError(t, err)

		assert.Equal(t, "2025-03", summary.Month)
		assert.Zero(t, summary.Trees)
		assert.Zero(t, summary.CO2Grams)
		assert.Zero(t, summary.MissionsDone)
	})
}
