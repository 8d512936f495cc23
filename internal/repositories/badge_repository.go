// file: internal/repositories/badge_repository.go
package repositories

import (
	"context"
	"fmt"

	"weplanet/internal/database"
	"weplanet/internal/models"

	"go.uber.org/zap"
)

// badgeRepository implements BadgeRepository against the eco_badge catalog
// table.
type badgeRepository struct {
	*BaseRepository
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *database.Manager, logger *zap.Logger) BadgeRepository {
	return &badgeRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// GetByID retrieves a badge by ID. Returns (nil, nil) when absent.
func (r *badgeRepository) GetByID(ctx context.Context, id int64) (*models.Badge, error) {
	query := `
		SELECT badge_id, badge_name, description, category_name, badge_image
		FROM eco_badge
		WHERE badge_id = $1`

	var badge models.Badge
	err := r.QueryRowContext(ctx, query, id).Scan(
		&badge.ID, &badge.Name, &badge.Description,
		&badge.Category, &badge.Image,
	)
	if err != nil {
		if r.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get badge by ID: %w", err)
	}
	return &badge, nil
}

// List returns all badges in unlock order (ascending badge ID).
func (r *badgeRepository) List(ctx context.Context) ([]*models.Badge, error) {
	query := `
		SELECT badge_id, badge_name, description, category_name, badge_image
		FROM eco_badge
		ORDER BY badge_id`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	var badges []*models.Badge
	for rows.Next() {
		var badge models.Badge
		if err := rows.Scan(
			&badge.ID, &badge.Name, &badge.Description,
			&badge.Category, &badge.Image,
		); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, &badge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate badges: %w", err)
	}
	return badges, nil
}

// MaxID returns the highest badge ID in the catalog, or 0 when the catalog
// is empty.
func (r *badgeRepository) MaxID(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(badge_id), 0) FROM eco_badge`

	var maxID int64
	if err := r.QueryRowContext(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to get max badge ID: %w", err)
	}
	return maxID, nil
}
