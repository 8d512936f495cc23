// file: internal/handlers/api/v1/ecoboard/ecoboard_controller.go
package ecoboard

import (
	"net/http"
	"time"

	"weplanet/internal/contextutils"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// EcoboardController handles dashboard API endpoints.
type EcoboardController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewEcoboardController creates a new ecoboard controller
func NewEcoboardController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *EcoboardController {
	return &EcoboardController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// GetSummary handles GET /api/v1/ecoboard/summary/me
func (c *EcoboardController) GetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := contextutils.GetUserID(r.Context())
	if userID == 0 {
		c.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	summary, err := c.serviceCollection.Ecoboard.MonthlySummary(r.Context(), userID, time.Now())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, summary)
}
