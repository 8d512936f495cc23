package services

import (
	"context"
	"database/sql"
	"net/http"
	"sort"
	"testing"
	"time"

	"weplanet/internal/models"
	"weplanet/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ===============================
// FAKES
// ===============================

type fakeMissionRepo struct {
	missions []*models.Mission
}

func (f *fakeMissionRepo) GetByID(ctx context.Context, id int64) (*models.Mission, error) {
	for _, m := range f.missions {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMissionRepo) List(ctx context.Context) ([]*models.Mission, error) {
	return f.missions, nil
}

type fakeBadgeRepo struct {
	badges []*models.Badge
}

func (f *fakeBadgeRepo) GetByID(ctx context.Context, id int64) (*models.Badge, error) {
	for _, b := range f.badges {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

// List returns badges ascending by ID, honoring the repository contract
// regardless of insertion order.
func (f *fakeBadgeRepo) List(ctx context.Context) ([]*models.Badge, error) {
	out := make([]*models.Badge, len(f.badges))
	copy(out, f.badges)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBadgeRepo) MaxID(ctx context.Context) (int64, error) {
	var max int64
	for _, b := range f.badges {
		if b.ID > max {
			max = b.ID
		}
	}
	return max, nil
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	if !t.committed {
		t.rolledBack = true
	}
	return sql.ErrTxDone
}

// fakeActivityRepo is an in-memory ledger. The Tx variants share state with
// the plain variants so repeated completions see each other's rows.
type fakeActivityRepo struct {
	activities []*models.Activity
	nextID     int64

	lastTx    *fakeTx
	lockCalls int

	monthlyCO2      float64
	monthlyMissions int64
	totalPoints     int64
}

func (f *fakeActivityRepo) BeginTx(ctx context.Context, opts *sql.TxOptions) (repositories.Tx, error) {
	f.lastTx = &fakeTx{}
	return f.lastTx, nil
}

func (f *fakeActivityRepo) LockUserLedger(ctx context.Context, tx repositories.Tx, userID int64) error {
	f.lockCalls++
	return nil
}

func (f *fakeActivityRepo) CountByUserTx(ctx context.Context, tx repositories.Tx, userID int64) (int64, error) {
	return f.countForUser(userID), nil
}

func (f *fakeActivityRepo) CreateTx(ctx context.Context, tx repositories.Tx, activity *models.Activity) error {
	f.nextID++
	activity.ID = f.nextID
	f.activities = append(f.activities, activity)
	return nil
}

func (f *fakeActivityRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return f.countForUser(userID), nil
}

func (f *fakeActivityRepo) MonthlyTotals(ctx context.Context, userID int64, since time.Time) (float64, int64, error) {
	return f.monthlyCO2, f.monthlyMissions, nil
}

func (f *fakeActivityRepo) TotalPoints(ctx context.Context, userID int64) (int64, error) {
	return f.totalPoints, nil
}

func (f *fakeActivityRepo) countForUser(userID int64) int64 {
	var count int64
	for _, a := range f.activities {
		if a.UserID == userID {
			count++
		}
	}
	return count
}

func threeBadges() []*models.Badge {
	return []*models.Badge{
		{ID: 1, Name: "Sprout"},
		{ID: 2, Name: "Seedling"},
		{ID: 3, Name: "Sapling"},
	}
}

func newTestMissionService(missions []*models.Mission, badges []*models.Badge) (*missionService, *fakeActivityRepo) {
	activityRepo := &fakeActivityRepo{}
	svc := NewMissionService(
		&fakeMissionRepo{missions: missions},
		&fakeBadgeRepo{badges: badges},
		activityRepo,
		zap.NewNop(),
	).(*missionService)
	return svc, activityRepo
}

// ===============================
// TESTS
// ===============================

func TestMissionService_CompleteMission_BadgeSequence(t *testing.T) {
	missions := []*models.Mission{{ID: 7, Title: "Use a reusable cup", CO2Reduction: 30, Point: 10}}
	svc, activityRepo := newTestMissionService(missions, threeBadges())

	var awarded []*BadgeAward
	for i := 0; i < 4; i++ {
		result, err := svc.CompleteMission(context.Background(), 42, 7)
		require.NoError(t, err)
		awarded = append(awarded, result.Badge)
	}

	// Three badges in the catalog: the fourth completion earns nothing.
	require.NotNil(t, awarded[0])
	assert.Equal(t, int64(1), awarded[0].ID)
	require.NotNil(t, awarded[1])
	assert.Equal(t, int64(2), awarded[1].ID)
	require.NotNil(t, awarded[2])
	assert.Equal(t, int64(3), awarded[2].ID)
	assert.Nil(t, awarded[3])

	// Every completion is a ledger row regardless of badge outcome.
	require.Len(t, activityRepo.activities, 4)
	assert.Equal(t, int64(1), *activityRepo.activities[0].BadgeID)
	assert.Equal(t, int64(2), *activityRepo.activities[1].BadgeID)
	assert.Equal(t, int64(3), *activityRepo.activities[2].BadgeID)
	assert.Nil(t, activityRepo.activities[3].BadgeID)
}

func TestMissionService_CompleteMission_Result(t *testing.T) {
	missions := []*models.Mission{{ID: 3, Title: "Take public transport", CO2Reduction: 1200, Point: 20}}
	svc, _ := newTestMissionService(missions, threeBadges())

	result, err := svc.CompleteMission(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, "Mission completed", result.Message)
	assert.Equal(t, int64(3), result.MissionID)
	assert.Equal(t, 20, result.Point)
	assert.Equal(t, float64(1200), result.CO2)
	require.NotNil(t, result.Badge)
	assert.Equal(t, "Sprout", result.Badge.Name)
}

func TestMissionService_CompleteMission_MissionNotFound(t *testing.T) {
	svc, activityRepo := newTestMissionService([]*models.Mission{{ID: 1}}, threeBadges())

	_, err := svc.CompleteMission(context.Background(), 1, 999)
	require.Error(t, err)

	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, svcErr.GetStatusCode())
	assert.Equal(t, "Mission not found", svcErr.Message)

	// Nothing is written on a failed lookup.
	assert.Empty(t, activityRepo.activities)
	assert.Nil(t, activityRepo.lastTx)
}

func TestMissionService_CompleteMission_EmptyBadgeCatalog(t *testing.T) {
	missions := []*models.Mission{{ID: 1, Title: "Sort your recycling", Point: 10}}
	svc, activityRepo := newTestMissionService(missions, nil)

	result, err := svc.CompleteMission(context.Background(), 5, 1)
	require.NoError(t, err)

	// With no badges there is never an award, but the completion still counts.
	assert.Nil(t, result.Badge)
	require.Len(t, activityRepo.activities, 1)
	assert.Nil(t, activityRepo.activities[0].BadgeID)
}

func TestMissionService_CompleteMission_NoDeduplication(t *testing.T) {
	missions := []*models.Mission{{ID: 1, Title: "Carry a reusable bag", Point: 5}}
	svc, activityRepo := newTestMissionService(missions, threeBadges())

	first, err := svc.CompleteMission(context.Background(), 9, 1)
	require.NoError(t, err)
	second, err := svc.CompleteMission(context.Background(), 9, 1)
	require.NoError(t, err)

	// Completing the same mission twice is two rows and two awards.
	require.Len(t, activityRepo.activities, 2)
	assert.Equal(t, int64(1), first.Badge.ID)
	assert.Equal(t, int64(2), second.Badge.ID)
}

func TestMissionService_CompleteMission_IsolatedPerUser(t *testing.T) {
	missions := []*models.Mission{{ID: 1, Title: "Eat a plant-based meal"}}
	svc, _ := newTestMissionService(missions, threeBadges())

	resultA, err := svc.CompleteMission(context.Background(), 1, 1)
	require.NoError(t, err)
	resultB, err := svc.CompleteMission(context.Background(), 2, 1)
	require.NoError(t, err)

	// Each user runs their own progression.
	assert.Equal(t, int64(1), resultA.Badge.ID)
	assert.Equal(t, int64(1), resultB.Badge.ID)
}

func TestMissionService_CompleteMission_SerializesAndCommits(t *testing.T) {
	missions := []*models.Mission{{ID: 1, Title: "Unplug idle electronics"}}
	svc, activityRepo := newTestMissionService(missions, threeBadges())

	_, err := svc.CompleteMission(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, activityRepo.lockCalls)
	require.NotNil(t, activityRepo.lastTx)
	assert.True(t, activityRepo.lastTx.committed)
	assert.False(t, activityRepo.lastTx.rolledBack)
}

func TestMissionService_PickDailyMission(t *testing.T) {
	t.Run("returns a catalog mission", func(t *testing.T) {
		missions := []*models.Mission{
			{ID: 1, Title: "Use a reusable cup"},
			{ID: 2, Title: "Take public transport"},
			{ID: 3, Title: "Sort your recycling"},
		}
		svc, _ := newTestMissionService(missions, nil)

		for i := 0; i < 20; i++ {
			mission, err := svc.PickDailyMission(context.Background())
			require.NoError(t, err)
			require.NotNil(t, mission)
			assert.Contains(t, []int64{1, 2, 3}, mission.ID)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		svc, _ := newTestMissionService(nil, nil)

		_, err := svc.PickDailyMission(context.Background())
		require.Error(t, err)

		svcErr, ok := AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, svcErr.GetStatusCode())
	})
}
