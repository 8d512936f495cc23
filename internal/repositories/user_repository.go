// file: internal/repositories/user_repository.go
package repositories

import (
	"context"
	"fmt"

	"weplanet/internal/database"
	"weplanet/internal/models"

	"go.uber.org/zap"
)

// userRepository implements UserRepository against the users table.
type userRepository struct {
	*BaseRepository
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Manager, logger *zap.Logger) UserRepository {
	return &userRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

const userColumns = `
	u.user_id, u.email, u.password_hash, u.auth_provider, u.provider_user_id,
	u.nickname, u.badge_id, u.created_at, u.updated_at, u.deleted_at`

// Create inserts a new user and populates its generated fields.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, auth_provider, provider_user_id, nickname)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at, updated_at`

	err := r.QueryRowContext(
		ctx, query,
		user.Email, user.PasswordHash, user.AuthProvider,
		user.ProviderUserID, user.Nickname,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.GetLogger().Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("auth_provider", user.AuthProvider),
	)
	return nil
}

// GetByID retrieves an active user by ID.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.user_id = $1 AND u.deleted_at IS NULL`

	user, err := r.scanUser(r.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves an active user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.email = $1 AND u.deleted_at IS NULL`

	user, err := r.scanUser(r.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Update persists mutable profile fields.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET nickname = $2, badge_id = $3, updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.QueryRowContext(ctx, query, user.ID, user.Nickname, user.BadgeID).
		Scan(&user.UpdatedAt)
	if err != nil {
		if r.IsNotFound(err) {
			return fmt.Errorf("user %d not found", user.ID)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// SoftDelete marks the user as deleted. The row and its ledger entries are
// retained.
func (r *userRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE users
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL`

	result, err := r.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete user: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	r.GetLogger().Info("User soft-deleted", zap.Int64("user_id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *userRepository) scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.AuthProvider, &user.ProviderUserID,
		&user.Nickname, &user.BadgeID,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		if r.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
