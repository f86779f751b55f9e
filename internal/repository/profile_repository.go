package repository

import (
	"context"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id int) error

	// CandidateIDs returns IDs of active profiles outside excludeIDs and,
	// when excludeOwner is set, not owned by that user.
	CandidateIDs(ctx context.Context, excludeIDs []int, excludeOwner *int) ([]int, error)

	// CountCandidates is CandidateIDs without materializing the list.
	CountCandidates(ctx context.Context, excludeIDs []int, excludeOwner *int) (int, error)
}
