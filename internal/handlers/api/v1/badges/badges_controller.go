// file: internal/handlers/api/v1/badges/badges_controller.go
package badges

import (
	"net/http"

	"weplanet/internal/contextutils"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// BadgeController handles badge API endpoints.
type BadgeController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewBadgeController creates a new badge controller
func NewBadgeController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *BadgeController {
	return &BadgeController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// ListBadges handles GET /api/v1/badges
func (c *BadgeController) ListBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	badges, err := c.serviceCollection.Badge.ListBadges(r.Context())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, badges)
}

// GetUserProgress handles GET /api/v1/badges/user-progress/me
func (c *BadgeController) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := contextutils.GetUserID(r.Context())
	if userID == 0 {
		c.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	progress, err := c.serviceCollection.Badge.BadgeProgress(r.Context(), userID)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, progress)
}
