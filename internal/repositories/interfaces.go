// file: internal/repositories/interfaces.go
package repositories

import (
	"context"
	"database/sql"
	"time"

	"weplanet/internal/models"
)

// ===============================
// CORE REPOSITORY INTERFACES
// ===============================

// UserRepository defines the contract for user data operations. Lookup
// methods return (nil, nil) when no active user matches; soft-deleted rows
// are retained but never returned.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SoftDelete(ctx context.Context, id int64) error
}

// MissionRepository defines read access to the mission catalog. The
// catalog is seeded out-of-band and immutable at runtime.
type MissionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Mission, error)
	List(ctx context.Context) ([]*models.Mission, error)
}

// BadgeRepository defines read access to the badge catalog, ordered by
// badge ID (the unlock order).
type BadgeRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Badge, error)
	List(ctx context.Context) ([]*models.Badge, error)
	MaxID(ctx context.Context) (int64, error)
}

// Tx is the transaction handle for ledger writes. The SQL implementation
// hands out *sql.Tx.
type Tx interface {
	Commit() error
	Rollback() error
}

// ActivityRepository defines operations on the append-only completion
// ledger. The Tx variants let the completion engine serialize the
// count-then-insert sequence for one user inside a single transaction.
type ActivityRepository interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error)
	LockUserLedger(ctx context.Context, tx Tx, userID int64) error
	CountByUserTx(ctx context.Context, tx Tx, userID int64) (int64, error)
	CreateTx(ctx context.Context, tx Tx, activity *models.Activity) error

	CountByUser(ctx context.Context, userID int64) (int64, error)
	MonthlyTotals(ctx context.Context, userID int64, since time.Time) (co2 float64, missions int64, err error)
	TotalPoints(ctx context.Context, userID int64) (int64, error)
}
