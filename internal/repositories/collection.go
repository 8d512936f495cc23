// file: internal/repositories/collection.go
package repositories

import (
	"weplanet/internal/database"

	"go.uber.org/zap"
)

// Collection bundles all repositories for injection into the service
// layer.
type Collection struct {
	User     UserRepository
	Mission  MissionRepository
	Badge    BadgeRepository
	Activity ActivityRepository
}

// NewCollection creates all repositories against the given database
// manager.
func NewCollection(db *database.Manager, logger *zap.Logger) *Collection {
	return &Collection{
		User:     NewUserRepository(db, logger),
		Mission:  NewMissionRepository(db, logger),
		Badge:    NewBadgeRepository(db, logger),
		Activity: NewActivityRepository(db, logger),
	}
}
