package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, name, age, description, height,
			income_bracket, gender_identity, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Name, profile.Age, profile.Description,
		profile.Height, profile.IncomeBracket, profile.GenderIdentity, profile.Active,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE id = $1`
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &profiles, query, userID)
	return profiles, err
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, age = $2, description = $3, height = $4,
		    income_bracket = $5, gender_identity = $6, active = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.Age, profile.Description, profile.Height,
		profile.IncomeBracket, profile.GenderIdentity, profile.Active,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id int) error {
	// Interaction records and images cascade with the profile.
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) CandidateIDs(ctx context.Context, excludeIDs []int, excludeOwner *int) ([]int, error) {
	if excludeIDs == nil {
		excludeIDs = []int{}
	}
	var ids []int
	query := `
		SELECT id FROM profiles
		WHERE active = TRUE
		  AND NOT (id = ANY($1))
		  AND ($2::int IS NULL OR user_id IS DISTINCT FROM $2)
		ORDER BY id
	`
	err := r.db.SelectContext(ctx, &ids, query, pq.Array(excludeIDs), excludeOwner)
	return ids, err
}

func (r *profileRepository) CountCandidates(ctx context.Context, excludeIDs []int, excludeOwner *int) (int, error) {
	if excludeIDs == nil {
		excludeIDs = []int{}
	}
	var count int
	query := `
		SELECT COUNT(*) FROM profiles
		WHERE active = TRUE
		  AND NOT (id = ANY($1))
		  AND ($2::int IS NULL OR user_id IS DISTINCT FROM $2)
	`
	err := r.db.GetContext(ctx, &count, query, pq.Array(excludeIDs), excludeOwner)
	return count, err
}
