package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *domain.ProfileImage) error {
	// Position is assigned at the tail of the profile's image list.
	query := `
		INSERT INTO profile_images (profile_id, position, filename, content_type)
		VALUES (
			$1,
			COALESCE((SELECT MAX(position) + 1 FROM profile_images WHERE profile_id = $1), 0),
			$2, $3
		)
		RETURNING id, position, created_at
	`
	return r.db.QueryRowContext(ctx, query, image.ProfileID, image.Filename, image.ContentType).
		Scan(&image.ID, &image.Position, &image.CreatedAt)
}

func (r *imageRepository) GetByID(ctx context.Context, id int) (*domain.ProfileImage, error) {
	var image domain.ProfileImage
	query := `SELECT * FROM profile_images WHERE id = $1`
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) ListByProfile(ctx context.Context, profileID int) ([]*domain.ProfileImage, error) {
	var images []*domain.ProfileImage
	query := `SELECT * FROM profile_images WHERE profile_id = $1 ORDER BY position ASC`
	err := r.db.SelectContext(ctx, &images, query, profileID)
	return images, err
}

func (r *imageRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profile_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
