package router

import (
	"net/http"
	"strings"

	"weplanet/internal/config"
	"weplanet/internal/database"
	"weplanet/internal/handlers/api/v1/auth"
	"weplanet/internal/handlers/api/v1/badges"
	"weplanet/internal/handlers/api/v1/ecoboard"
	"weplanet/internal/handlers/api/v1/missions"
	"weplanet/internal/handlers/api/v1/users"
	"weplanet/internal/middleware"
	"weplanet/internal/response"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// SetupRouter configures all HTTP routes and returns the main handler.
func SetupRouter(
	serviceCollection *services.ServiceCollection,
	authMiddleware *middleware.AuthMiddleware,
	responseBuilder *response.Builder,
	db *database.Manager,
	cfg *config.Config,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authController := auth.NewAuthController(serviceCollection, &cfg.Server, logger, responseBuilder)
	userController := users.NewUserController(serviceCollection, logger, responseBuilder)
	missionController := missions.NewMissionController(serviceCollection, logger, responseBuilder)
	badgeController := badges.NewBadgeController(serviceCollection, logger, responseBuilder)
	ecoboardController := ecoboard.NewEcoboardController(serviceCollection, logger, responseBuilder)

	// ===============================
	// PUBLIC ENDPOINTS
	// ===============================

	mux.HandleFunc("/health", healthHandler(db, responseBuilder))

	mux.Handle("/api/v1/auth/register", http.HandlerFunc(authController.Register))
	mux.Handle("/api/v1/auth/login", http.HandlerFunc(authController.Login))
	mux.Handle("/api/v1/auth/google/login", http.HandlerFunc(authController.GoogleLogin))
	mux.Handle("/api/v1/auth/google/callback", http.HandlerFunc(authController.GoogleCallback))

	// The badge catalog is master data and needs no identity.
	mux.Handle("/api/v1/badges", http.HandlerFunc(badgeController.ListBadges))

	// ===============================
	// AUTHENTICATED ENDPOINTS
	// ===============================

	mux.Handle("/api/v1/badges/user-progress/me",
		authMiddleware.RequireAuth(http.HandlerFunc(badgeController.GetUserProgress)))
	mux.Handle("/api/v1/ecoboard/summary/me",
		authMiddleware.RequireAuth(http.HandlerFunc(ecoboardController.GetSummary)))
	mux.Handle("/api/v1/users/me",
		authMiddleware.RequireAuth(http.HandlerFunc(userController.GetMe)))
	mux.Handle("/api/v1/users/me/deactivate",
		authMiddleware.RequireAuth(http.HandlerFunc(userController.Deactivate)))
	mux.Handle("/api/v1/missions/today",
		authMiddleware.RequireAuth(http.HandlerFunc(missionController.GetTodayMission)))

	// POST /api/v1/missions/{id}/complete
	mux.Handle("/api/v1/missions/", authMiddleware.RequireAuth(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/complete") {
				missionController.CompleteMission(w, r)
				return
			}
			http.NotFound(w, r)
		})))

	return middleware.Chain(mux,
		middleware.RequestID(logger),
		middleware.Recovery(logger, responseBuilder),
		middleware.CORS(cfg.Server.CORSOrigins),
	)
}

// healthHandler reports liveness plus a database ping.
func healthHandler(db *database.Manager, responseBuilder *response.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Health(r.Context()); err != nil {
			responseBuilder.WriteError(w, r, services.NewInternalError("database unavailable", err))
			return
		}
		responseBuilder.WriteSuccess(w, r, map[string]string{"status": "ok"})
	}
}
