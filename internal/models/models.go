// file: internal/models/models.go
package models

import (
	"time"
)

// ===============================
// CORE ENTITIES
// ===============================

// User represents an app user. Accounts created through Google OAuth have
// no password hash; local accounts always do.
type User struct {
	ID             int64   `json:"user_id" db:"user_id"`
	Email          string  `json:"email" db:"email" validate:"required,email,max=320"`
	PasswordHash   *string `json:"-" db:"password_hash"`
	AuthProvider   string  `json:"auth_provider" db:"auth_provider"`
	ProviderUserID *string `json:"provider_user_id,omitempty" db:"provider_user_id"`
	Nickname       *string `json:"nickname,omitempty" db:"nickname" validate:"omitempty,max=100"`

	// Pointer to the badge shown on the profile, managed by the client.
	BadgeID *int64 `json:"badge_id,omitempty" db:"badge_id"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// IsDeleted reports whether the user has been soft-deleted. Deleted rows
// are retained but excluded from active-user lookups.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Mission is a catalog entry. The catalog is seeded out-of-band and
// read-only at runtime.
type Mission struct {
	ID           int64   `json:"mission_id" db:"mission_id"`
	Title        string  `json:"title" db:"title"`
	Description  *string `json:"description,omitempty" db:"description"`
	CO2Reduction float64 `json:"base_co2_reduction" db:"base_co2_reduction"`
	Point        int     `json:"default_point" db:"default_point"`
}

// Badge is a catalog entry. Badge IDs are dense and contiguous starting at
// 1; ascending ID order is the unlock order.
type Badge struct {
	ID          int64   `json:"badge_id" db:"badge_id"`
	Name        string  `json:"badge_name" db:"badge_name"`
	Description *string `json:"description,omitempty" db:"description"`
	Category    *string `json:"category_name,omitempty" db:"category_name"`
	Image       *string `json:"badge_image,omitempty" db:"badge_image"`
}

// Activity is one ledger entry: one user completed one mission at one time,
// optionally earning a badge. Rows are append-only.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	MissionID   int64     `json:"mission_id" db:"mission_id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	BadgeID     *int64    `json:"badge_id,omitempty" db:"badge_id"`
}

// ===============================
// PROGRESSION
// ===============================

// ProgressionState is the count-derived badge progression of a user. The
// ledger row count, not a stored state flag, is the source of truth.
type ProgressionState struct {
	CompletedCount int64
}

// NextBadgeID returns the badge to award for the completion currently being
// recorded, or nil when the sequence is exhausted or the catalog is empty.
// maxBadgeID is the highest ID in the badge catalog (0 when empty).
func (p ProgressionState) NextBadgeID(maxBadgeID int64) *int64 {
	var candidate int64
	if p.CompletedCount == 0 {
		candidate = 1
	} else {
		candidate = p.CompletedCount + 1
	}
	if candidate > maxBadgeID {
		return nil
	}
	return &candidate
}
