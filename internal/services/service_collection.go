// file: internal/services/service_collection.go
package services

import (
	"weplanet/internal/cache"
	"weplanet/internal/config"
	"weplanet/internal/database"
	"weplanet/internal/repositories"

	"go.uber.org/zap"
)

// ServiceCollection wires repositories and services once at startup and
// hands them to the boundary layer. All dependencies are explicit; there
// are no lazily-initialized globals.
type ServiceCollection struct {
	Repositories *repositories.Collection

	Mission  MissionService
	Ecoboard EcoboardService
	Badge    BadgeService
	Auth     AuthService
	User     UserService
}

// NewServiceCollection creates all services against the given database
// manager, cache and configuration.
func NewServiceCollection(
	db *database.Manager,
	cacheInstance cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) *ServiceCollection {
	repos := repositories.NewCollection(db, logger)

	return &ServiceCollection{
		Repositories: repos,
		Mission:      NewMissionService(repos.Mission, repos.Badge, repos.Activity, logger),
		Ecoboard:     NewEcoboardService(repos.Activity, logger),
		Badge:        NewBadgeService(repos.Badge, repos.Activity, cacheInstance, logger),
		Auth:         NewAuthService(repos.User, &cfg.Auth, logger),
		User:         NewUserService(repos.User, repos.Activity, cacheInstance, logger),
	}
}
