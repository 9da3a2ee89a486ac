package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/models"
)

// UpsertProfile creates or replaces the profile of profile.UserID.
func (s *OrderStore) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO profiles (user_id, first_name, last_name, email, address, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			address = excluded.address,
			updated_at = excluded.updated_at
	`), profile.UserID, profile.FirstName, profile.LastName, profile.Email, profile.Address, s.timestamp())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return s.GetProfile(ctx, profile.UserID)
}

func (s *OrderStore) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		SELECT user_id, first_name, last_name, email, address, updated_at
		FROM profiles
		WHERE user_id = $1
	`), userID).Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Address, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Profile not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
