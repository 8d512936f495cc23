// file: internal/handlers/api/v1/missions/missions_controller.go
package missions

import (
	"net/http"
	"strconv"
	"strings"

	"weplanet/internal/contextutils"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// MissionController handles mission API endpoints.
type MissionController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewMissionController creates a new mission controller
func NewMissionController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *MissionController {
	return &MissionController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// GetTodayMission handles GET /api/v1/missions/today
func (c *MissionController) GetTodayMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mission, err := c.serviceCollection.Mission.PickDailyMission(r.Context())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, mission)
}

// CompleteMission handles POST /api/v1/missions/{id}/complete
func (c *MissionController) CompleteMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := contextutils.GetUserID(r.Context())
	if userID == 0 {
		c.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	missionID, ok := parseMissionID(r.URL.Path)
	if !ok {
		c.responseBuilder.WriteError(w, r, services.NewValidationError("invalid mission ID", nil))
		return
	}

	result, err := c.serviceCollection.Mission.CompleteMission(r.Context(), userID, missionID)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, result)
}

// parseMissionID extracts the mission ID from
// /api/v1/missions/{id}/complete.
func parseMissionID(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	// api / v1 / missions / {id} / complete
	if len(parts) != 5 || parts[4] != "complete" {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
