// file: internal/services/interfaces.go
package services

import (
	"context"
	"time"

	"weplanet/internal/models"
)

// ===============================
// CORE SERVICE INTERFACES
// ===============================

// MissionService defines the mission catalog and completion engine.
type MissionService interface {
	// PickDailyMission returns one mission chosen uniformly at random from
	// the catalog. Repeated calls may return different missions.
	PickDailyMission(ctx context.Context) (*models.Mission, error)

	// CompleteMission records one completion for the user, awards the next
	// badge in sequence when one remains, and returns the outcome. There
	// is no deduplication: every call appends a ledger entry.
	CompleteMission(ctx context.Context, userID, missionID int64) (*CompletionResult, error)
}

// EcoboardService defines the read-side aggregation over the ledger.
type EcoboardService interface {
	// MonthlySummary aggregates the user's completions since the first of
	// the month containing now. Empty months yield all-zero summaries.
	MonthlySummary(ctx context.Context, userID int64, now time.Time) (*MonthlySummary, error)
}

// BadgeService defines badge catalog listing and user progress.
type BadgeService interface {
	ListBadges(ctx context.Context) ([]*BadgeListEntry, error)
	BadgeProgress(ctx context.Context, userID int64) (*BadgeProgress, error)
}

// AuthService defines registration, login and Google OAuth.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, code string) (*TokenResponse, error)

	// ValidateToken parses and verifies an access token and returns the
	// subject user ID.
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// UserService defines profile operations.
type UserService interface {
	Me(ctx context.Context, userID int64) (*MeResponse, error)
	Deactivate(ctx context.Context, userID int64) error
}
