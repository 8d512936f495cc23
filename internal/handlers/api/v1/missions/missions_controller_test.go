package missions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weplanet/internal/contextutils"
	"weplanet/internal/models"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeMissionService is a canned-response implementation for handler tests.
type fakeMissionService struct {
	mission *models.Mission
	result  *services.CompletionResult
	err     error

	completedUserID    int64
	completedMissionID int64
}

func (f *fakeMissionService) PickDailyMission(ctx context.Context) (*models.Mission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mission, nil
}

func (f *fakeMissionService) CompleteMission(ctx context.Context, userID, missionID int64) (*services.CompletionResult, error) {
	f.completedUserID = userID
	f.completedMissionID = missionID
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestController(svc services.MissionService) *MissionController {
	return NewMissionController(
		&services.ServiceCollection{Mission: svc},
		zap.NewNop(),
		response.NewBuilder(zap.NewNop()),
	)
}

func TestMissionController_GetTodayMission(t *testing.T) {
	t.Run("returns the picked mission", func(t *testing.T) {
		svc := &fakeMissionService{mission: &models.Mission{ID: 2, Title: "Take public transport", Point: 20}}
		controller := newTestController(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/missions/today", nil)
		rr := httptest.NewRecorder()
		controller.GetTodayMission(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(2), data["mission_id"])
		assert.Equal(t, "Take public transport", data["title"])
	})

	t.Run("empty catalog maps to 404", func(t *testing.T) {
		svc := &fakeMissionService{err: services.NewNotFoundError("no missions found")}
		controller := newTestController(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/missions/today", nil)
		rr := httptest.NewRecorder()
		controller.GetTodayMission(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rejects POST", func(t *testing.T) {
		controller := newTestController(&fakeMissionService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/today", nil)
		rr := httptest.NewRecorder()
		controller.GetTodayMission(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestMissionController_CompleteMission(t *testing.T) {
	badge := &services.BadgeAward{ID: 1, Name: "Sprout"}
	result := &services.CompletionResult{
		Message:   "Mission completed",
		MissionID: 7,
		Point:     10,
		CO2:       30,
		Badge:     badge,
	}

	t.Run("records a completion", func(t *testing.T) {
		svc := &fakeMissionService{result: result}
		controller := newTestController(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/7/complete", nil)
		req = req.WithContext(contextutils.WithUserID(req.Context(), 42))
		rr := httptest.NewRecorder()
		controller.CompleteMission(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(42), svc.completedUserID)
		assert.Equal(t, int64(7), svc.completedMissionID)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Mission completed", data["message"])

		badgeData, ok := data["badge"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), badgeData["id"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		controller := newTestController(&fakeMissionService{result: result})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/7/complete", nil)
		rr := httptest.NewRecorder()
		controller.CompleteMission(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid mission ID in path", func(t *testing.T) {
		controller := newTestController(&fakeMissionService{result: result})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/abc/complete", nil)
		req = req.WithContext(contextutils.WithUserID(req.Context(), 42))
		rr := httptest.NewRecorder()
		controller.CompleteMission(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown mission maps to 404", func(t *testing.T) {
		svc := &fakeMissionService{err: services.NewNotFoundError("Mission not found")}
		controller := newTestController(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/999/complete", nil)
		req = req.WithContext(contextutils.WithUserID(req.Context(), 42))
		rr := httptest.NewRecorder()
		controller.CompleteMission(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		errObj, ok := body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", errObj["type"])
	})
}

func TestParseMissionID(t *testing.T) {
	tests := []struct {
		path   string
		wantID int64
		wantOK bool
	}{
		{"/api/v1/missions/7/complete", 7, true},
		{"/api/v1/missions/123/complete", 123, true},
		{"/api/v1/missions/abc/complete", 0, false},
		{"/api/v1/missions/0/complete", 0, false},
		{"/api/v1/missions/-1/complete", 0, false},
		{"/api/v1/missions/7", 0, false},
		{"/api/v1/missions/7/done", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, ok := parseMissionID(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
