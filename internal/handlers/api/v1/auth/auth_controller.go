// file: internal/handlers/api/v1/auth/auth_controller.go
package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weplanet/internal/config"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const oauthStateCookie = "oauth_state"

// AuthController handles authentication API endpoints.
type AuthController struct {
	serviceCollection *services.ServiceCollection
	serverConfig      *config.ServerConfig
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewAuthController creates a new auth controller
func NewAuthController(
	serviceCollection *services.ServiceCollection,
	serverConfig *config.ServerConfig,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *AuthController {
	return &AuthController{
		serviceCollection: serviceCollection,
		serverConfig:      serverConfig,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// Register handles POST /api/v1/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.responseBuilder.WriteError(w, r, services.NewValidationError("invalid request body", err))
		return
	}

	user, err := c.serviceCollection.Auth.Register(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteCreated(w, r, user)
}

// Login handles POST /api/v1/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req services.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.responseBuilder.WriteError(w, r, services.NewValidationError("invalid request body", err))
		return
	}

	token, err := c.serviceCollection.Auth.Login(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	c.responseBuilder.WriteSuccess(w, r, token)
}

// GoogleLogin handles GET /api/v1/auth/google/login
func (c *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := newOAuthState()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   c.serverConfig.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, c.serviceCollection.Auth.GoogleAuthURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /api/v1/auth/google/callback
func (c *AuthController) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		c.responseBuilder.WriteUnauthorized(w, r, "invalid OAuth state")
		return
	}

	token, err := c.serviceCollection.Auth.GoogleCallback(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	// Hand the token to the frontend via its callback route.
	redirectURL := fmt.Sprintf("%s/auth/callback?token=%s", c.serverConfig.FrontendURL, token.AccessToken)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func newOAuthState() string {
	if id, err := uuid.NewV4(); err == nil {
		return id.String()
	}
	return "state-fallback"
}
