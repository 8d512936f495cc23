// file: internal/repositories/mission_repository.go
package repositories

import (
	"context"
	"fmt"

	"weplanet/internal/database"
	"weplanet/internal/models"

	"go.uber.org/zap"
)

// missionRepository implements MissionRepository against the eco_mission
// catalog table.
type missionRepository struct {
	*BaseRepository
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *database.Manager, logger *zap.Logger) MissionRepository {
	return &missionRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// GetByID retrieves a mission by ID. Returns (nil, nil) when absent.
func (r *missionRepository) GetByID(ctx context.Context, id int64) (*models.Mission, error) {
	query := `
		SELECT mission_id, title, description, base_co2_reduction, default_point
		FROM eco_mission
		WHERE mission_id = $1`

	var mission models.Mission
	err := r.QueryRowContext(ctx, query, id).Scan(
		&mission.ID, &mission.Title, &mission.Description,
		&mission.CO2Reduction, &mission.Point,
	)
	if err != nil {
		if r.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission by ID: %w", err)
	}
	return &mission, nil
}

// List returns the whole mission catalog.
func (r *missionRepository) List(ctx context.Context) ([]*models.Mission, error) {
	query := `
		SELECT mission_id, title, description, base_co2_reduction, default_point
		FROM eco_mission
		ORDER BY mission_id`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []*models.Mission
	for rows.Next() {
		var mission models.Mission
		if err := rows.Scan(
			&mission.ID, &mission.Title, &mission.Description,
			&mission.CO2Reduction, &mission.Point,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, &mission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate missions: %w", err)
	}
	return missions, nil
}
