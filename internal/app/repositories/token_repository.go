package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// TokenRepository stores opaque refresh tokens
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// SaveRefreshToken persists a refresh token for a user
func (r *TokenRepository) SaveRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token, userID, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save refresh token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error saving refresh token")
		return fmt.Errorf("error saving refresh token: %w", err)
	}
	return nil
}

// GetUserIDByRefreshToken returns the owning user of a live refresh token
func (r *TokenRepository) GetUserIDByRefreshToken(ctx context.Context, token string) (int64, error) {
	sql, args, err := r.sb.Select("user_id", "expires_at", "revoked").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build get refresh token query: %w", err)
	}

	var (
		userID    int64
		expiresAt time.Time
		revoked   bool
	)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&userID, &expiresAt, &revoked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning refresh token row")
		return 0, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if revoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return 0, apperrors.ErrTokenExpired
	}
	return userID, nil
}

// RevokeRefreshToken invalidates a refresh token
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke refresh token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error revoking refresh token")
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// DeleteExpiredTokens removes tokens past their expiry
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete expired tokens query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting expired tokens")
		return fmt.Errorf("error deleting expired tokens: %w", err)
	}
	if tag.RowsAffected() > 0 {
		logger.Debug().Int64("count", tag.RowsAffected()).Msg("Expired refresh tokens removed")
	}
	return nil
}
