// Package seed provisions the initial admin account.
package seed

import (
	"context"
	"errors"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/config"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/auth"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// EnsureAdmin creates the configured admin account if it does not exist yet.
// Skipped entirely when no seed credentials are configured.
func EnsureAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg config.SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Debug().Msg("No admin seed configured, skipping")
		return nil
	}

	_, err := userRepo.GetUserByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: passwordHash,
		FullName:     name,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", cfg.AdminEmail).Msg("Admin account seeded")
	return nil
}
