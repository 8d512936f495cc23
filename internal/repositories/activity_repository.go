// file: internal/repositories/activity_repository.go
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"weplanet/internal/database"
	"weplanet/internal/models"

	"go.uber.org/zap"
)

// activityRepository implements ActivityRepository against the
// user_activity ledger table. Rows are append-only; nothing here updates
// or deletes.
type activityRepository struct {
	*BaseRepository
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.Manager, logger *zap.Logger) ActivityRepository {
	return &activityRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// BeginTx starts a ledger transaction.
func (r *activityRepository) BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error) {
	return r.BaseRepository.BeginTx(ctx, opts)
}

// sqlTx unwraps the concrete transaction.
func sqlTx(tx Tx) (*sql.Tx, error) {
	t, ok := tx.(*sql.Tx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	return t, nil
}

// LockUserLedger takes a transaction-scoped advisory lock on the user's
// ledger partition. Concurrent completions for the same user serialize
// here, so the count read inside the transaction is stable until commit.
func (r *activityRepository) LockUserLedger(ctx context.Context, tx Tx, userID int64) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}
	if _, err := t.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return fmt.Errorf("failed to lock user ledger: %w", err)
	}
	return nil
}

// CountByUserTx counts the user's ledger entries inside tx.
func (r *activityRepository) CountByUserTx(ctx context.Context, tx Tx, userID int64) (int64, error) {
	t, err := sqlTx(tx)
	if err != nil {
		return 0, err
	}
	var count int64
	err = t.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_activity WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// CreateTx appends one ledger entry inside tx and populates the generated
// ID and timestamp.
func (r *activityRepository) CreateTx(ctx context.Context, tx Tx, activity *models.Activity) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_activity (user_id, mission_id, completed_at, badge_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, completed_at`

	err = t.QueryRowContext(
		ctx, query,
		activity.UserID, activity.MissionID, activity.CompletedAt, activity.BadgeID,
	).Scan(&activity.ID, &activity.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	r.GetLogger().Info("Activity recorded",
		zap.Int64("user_id", activity.UserID),
		zap.Int64("mission_id", activity.MissionID),
		zap.Any("badge_id", activity.BadgeID),
	)
	return nil
}

// CountByUser counts the user's ledger entries.
func (r *activityRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_activity WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// MonthlyTotals sums mission CO2 values and counts ledger entries for the
// user since the given time. Empty result sets come back as zeros.
func (r *activityRepository) MonthlyTotals(ctx context.Context, userID int64, since time.Time) (float64, int64, error) {
	query := `
		SELECT COALESCE(SUM(m.base_co2_reduction), 0), COUNT(a.id)
		FROM user_activity a
		JOIN eco_mission m ON m.mission_id = a.mission_id
		WHERE a.user_id = $1 AND a.completed_at >= $2`

	var co2 float64
	var missions int64
	if err := r.QueryRowContext(ctx, query, userID, since).Scan(&co2, &missions); err != nil {
		return 0, 0, fmt.Errorf("failed to get monthly totals: %w", err)
	}
	return co2, missions, nil
}

// TotalPoints sums the point values of every mission the user has
// completed, counting repeats.
func (r *activityRepository) TotalPoints(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(m.default_point), 0)
		FROM user_activity a
		JOIN eco_mission m ON m.mission_id = a.mission_id
		WHERE a.user_id = $1`

	var points int64
	if err := r.QueryRowContext(ctx, query, userID).Scan(&points); err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}
	return points, nil
}
