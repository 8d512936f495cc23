// file: internal/handlers/api/v1/users/users_controller.go
package users

import (
	"net/http"

	"weplanet/internal/contextutils"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// UserController handles user profile API endpoints.
type UserController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewUserController creates a new user controller
func NewUserController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *UserController {
	return &UserController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// GetMe handles GET /api/v1/users/me
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := contextutils.GetUserID(r.Context())
	if userID == 0 {
		c.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	me, err := c.serviceCollection.User.Me(r.Context(), userID)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, me)
}

// Deactivate handles POST /api/v1/users/me/deactivate
func (c *UserController) Deactivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := contextutils.GetUserID(r.Context())
	if userID == 0 {
		c.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	if err := c.serviceCollection.User.Deactivate(r.Context(), userID); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, map[string]string{"status": "deactivated"})
}
