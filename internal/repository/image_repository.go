package repository

import (
	"context"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
)

type ImageRepository interface {
	Create(ctx context.Context, image *domain.ProfileImage) error
	GetByID(ctx context.Context, id int) (*domain.ProfileImage, error)
	ListByProfile(ctx context.Context, profileID int) ([]*domain.ProfileImage, error)
	Delete(ctx context.Context, id int) error
}
