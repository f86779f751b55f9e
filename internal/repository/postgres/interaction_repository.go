package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, record *domain.InteractionRecord) error {
	query := `
		INSERT INTO profile_interactions (
			profile_id, viewer_session, action, time_spent, scroll_depth, image_index
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		record.ProfileID, record.ViewerSession, record.Action,
		record.TimeSpent, record.ScrollDepth, record.ImageIndex,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *interactionRepository) ListByProfile(ctx context.Context, profileID int) ([]*domain.InteractionRecord, error) {
	var records []*domain.InteractionRecord
	query := `SELECT * FROM profile_interactions WHERE profile_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &records, query, profileID)
	return records, err
}

func (r *interactionRepository) ListRecentByProfile(ctx context.Context, profileID, limit int) ([]*domain.InteractionRecord, error) {
	var records []*domain.InteractionRecord
	query := `
		SELECT * FROM profile_interactions
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &records, query, profileID, limit)
	return records, err
}

func (r *interactionRepository) CountByProfile(ctx context.Context, profileID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM profile_interactions WHERE profile_id = $1`
	err := r.db.GetContext(ctx, &count, query, profileID)
	return count, err
}
