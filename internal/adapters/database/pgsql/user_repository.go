package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, name, email, auth_provider, provider_user_id, password_hash, currency, monthly_budget, refresh_token_hash, refresh_token_expiry, created_at, last_updated_at, deleted_at`

// UserRepository provides PostgreSQL persistence for users.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the facade.
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, name, email, auth_provider, provider_user_id, password_hash, currency, monthly_budget, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.AuthProvider,
		user.ProviderUserID,
		user.PasswordHash,
		user.Currency,
		user.MonthlyBudget,
		user.CreatedAt,
		user.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	return r.findOne(ctx, query, userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1 AND deleted_at IS NULL;
    `
	return r.findOne(ctx, query, email)
}

func (r *UserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;
    `
	return r.findOne(ctx, query, provider, providerUserID)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET name = $1, currency = $2, monthly_budget = $3, last_updated_at = $4
        WHERE user_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.Currency,
		user.MonthlyBudget,
		user.LastUpdatedAt,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, refresh_token_expiry = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = '', refresh_token_expiry = NULL
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.AuthProvider,
		&user.ProviderUserID,
		&user.PasswordHash,
		&user.Currency,
		&user.MonthlyBudget,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiry,
		&user.CreatedAt,
		&user.LastUpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
