package repository

import (
	"context"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
)

// InteractionRepository is an append-only log. There is deliberately no
// update method; rows disappear only through the profile cascade.
type InteractionRepository interface {
	Create(ctx context.Context, record *domain.InteractionRecord) error
	ListByProfile(ctx context.Context, profileID int) ([]*domain.InteractionRecord, error)
	ListRecentByProfile(ctx context.Context, profileID, limit int) ([]*domain.InteractionRecord, error)
	CountByProfile(ctx context.Context, profileID int) (int, error)
}
