// file: internal/middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"weplanet/internal/cache"
	"weplanet/internal/contextutils"
	"weplanet/internal/models"
	"weplanet/internal/repositories"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

const userCacheTTL = 5 * time.Minute

// AuthMiddleware validates bearer tokens and resolves the authenticated
// user. Requests from missing or soft-deleted users are rejected before
// any handler runs; handlers only ever see an active user ID.
type AuthMiddleware struct {
	auth            services.AuthService
	userRepo        repositories.UserRepository
	cache           cache.Cache
	responseBuilder *response.Builder
	logger          *zap.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(
	auth services.AuthService,
	userRepo repositories.UserRepository,
	cacheInstance cache.Cache,
	responseBuilder *response.Builder,
	logger *zap.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		auth:            auth,
		userRepo:        userRepo,
		cache:           cacheInstance,
		responseBuilder: responseBuilder,
		logger:          logger,
	}
}

// RequireAuth rejects requests without a valid bearer token for an active
// user and injects the user ID into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			m.responseBuilder.WriteUnauthorized(w, r, "Authentication required")
			return
		}

		userID, err := m.auth.ValidateToken(r.Context(), token)
		if err != nil {
			m.responseBuilder.WriteError(w, r, err)
			return
		}

		user, err := m.lookupUser(r, userID)
		if err != nil {
			m.responseBuilder.WriteError(w, r, services.NewInternalError("failed to resolve user", err))
			return
		}
		if user == nil {
			// Missing or soft-deleted; tokens issued earlier stop working.
			m.responseBuilder.WriteUnauthorized(w, r, "User no longer active")
			return
		}

		ctx := contextutils.WithUserID(r.Context(), user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// lookupUser resolves the user, with a short cache in front of the
// repository to keep per-request overhead down.
func (m *AuthMiddleware) lookupUser(r *http.Request, userID int64) (*models.User, error) {
	key := fmt.Sprintf("user:%d", userID)

	var cached models.User
	if hit, err := m.cache.Get(r.Context(), key, &cached); err == nil && hit {
		return &cached, nil
	}

	user, err := m.userRepo.GetByID(r.Context(), userID)
	if err != nil || user == nil {
		return user, err
	}

	if err := m.cache.Set(r.Context(), key, user, userCacheTTL); err != nil {
		m.logger.Warn("User cache write failed", zap.Error(err))
	}
	return user, nil
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
