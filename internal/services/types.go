// file: internal/services/types.go
package services

// ===============================
// MISSION TYPES
// ===============================

// BadgeAward is the badge portion of a completion result.
type BadgeAward struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// CompletionResult is the outcome of recording one mission completion.
// Badge is nil when the unlock sequence is exhausted; the field is always
// present in the payload.
type CompletionResult struct {
	Message   string      `json:"message"`
	MissionID int64       `json:"mission_id"`
	Point     int         `json:"point"`
	CO2       float64     `json:"co2"`
	Badge     *BadgeAward `json:"badge"`
}

// ===============================
// ECOBOARD TYPES
// ===============================

// MonthlySummary aggregates the calendar month's completions for a user.
// Trees is the cedar-equivalent display metric: floor(co2 grams / 24).
type MonthlySummary struct {
	Month        string `json:"month"`
	Trees        int64  `json:"trees"`
	CO2Grams     int64  `json:"co2_g"`
	MissionsDone int64  `json:"missions_done"`
}

// ===============================
// BADGE TYPES
// ===============================

// BadgeListEntry is a catalog badge plus its unlock order. The badge ID
// doubles as the unlock-order key.
type BadgeListEntry struct {
	ID          int64   `json:"badge_id"`
	Name        string  `json:"badge_name"`
	Description *string `json:"description"`
	Category    *string `json:"category_name"`
	Image       *string `json:"badge_image"`
	UnlockOrder int64   `json:"unlock_order"`
}

// BadgeProgress reports a user's progression. Points and CO2 totals are
// fixed at zero in this view; the dashboard reads them from the monthly
// summary instead.
type BadgeProgress struct {
	CurrentBadgeCount      int64 `json:"current_badge_count"`
	TotalPoints            int64 `json:"total_points"`
	TotalCO2Reduction      int64 `json:"total_co2_reduction"`
	TotalMissionsCompleted int64 `json:"total_missions_completed"`
}

// ===============================
// AUTH TYPES
// ===============================

// RegisterRequest is a local account registration.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=320"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest is a local credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ===============================
// USER TYPES
// ===============================

// MeResponse is the authenticated user's profile with lifetime points
// summed over the ledger.
type MeResponse struct {
	UserID   int64   `json:"user_id"`
	Email    string  `json:"email"`
	Nickname *string `json:"nickname"`
	BadgeID  *int64  `json:"badge_id"`
	Points   int64   `json:"points"`
}
