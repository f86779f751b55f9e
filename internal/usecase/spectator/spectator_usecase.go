package spectator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

// SpectatorUseCase drives the anonymous browsing flow: pick an unseen
// active profile, remember it for the session, and record the swipe. The
// usecase itself is stateless; all per-session state lives in the
// ViewerSessionStore.
type SpectatorUseCase struct {
	profileRepo     repository.ProfileRepository
	imageRepo       repository.ImageRepository
	interactionRepo repository.InteractionRepository
	seenStore       repository.ViewerSessionStore
	logger          zerolog.Logger

	// pickIndex selects uniformly from n candidates; swapped out in tests.
	pickIndex func(n int) int
}

func NewSpectatorUseCase(
	profileRepo repository.ProfileRepository,
	imageRepo repository.ImageRepository,
	interactionRepo repository.InteractionRepository,
	seenStore repository.ViewerSessionStore,
	logger zerolog.Logger,
) *SpectatorUseCase {
	return &SpectatorUseCase{
		profileRepo:     profileRepo,
		imageRepo:       imageRepo,
		interactionRepo: interactionRepo,
		seenStore:       seenStore,
		logger:          logger,
		pickIndex:       rand.Intn,
	}
}

// ProfileView is a profile as shown to a spectator.
type ProfileView struct {
	*domain.Profile
	Images []*domain.ProfileImage `json:"images"`
}

// NextProfileResponse carries the selected profile (nil when the pool is
// exhausted) and how many unseen candidates remain after it.
type NextProfileResponse struct {
	Profile        *ProfileView `json:"profile"`
	RemainingCount int          `json:"remaining_count"`
}

// TrackRequest is one swipe event from the client. Numeric fields are
// pointers so that an omitted value is distinguishable from zero.
type TrackRequest struct {
	Action      string `json:"action_type" form:"action_type" binding:"omitempty,swipeaction"`
	TimeSpent   *int   `json:"time_spent" form:"time_spent"`
	ScrollDepth *int   `json:"scroll_depth" form:"scroll_depth"`
	ImageIndex  *int   `json:"image_index" form:"image_index"`
}

// SelectNext picks an unseen active profile uniformly at random for this
// viewer session, excluding the caller's own profiles when logged in.
// When every candidate has been seen the session's tracking state is
// cleared silently and no profile is returned; the caller just tries
// again.
func (uc *SpectatorUseCase) SelectNext(ctx context.Context, viewerSession string, currentUserID *int) (*NextProfileResponse, error) {
	seen, err := uc.seenStore.SeenProfileIDs(ctx, viewerSession)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.profileRepo.CandidateIDs(ctx, seen, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	if len(candidates) == 0 {
		// Full cycle completed; restart next time.
		if err := uc.seenStore.ClearSeen(ctx, viewerSession); err != nil {
			return nil, err
		}
		return &NextProfileResponse{Profile: nil, RemainingCount: 0}, nil
	}

	chosenID := candidates[uc.pickIndex(len(candidates))]

	p, err := uc.profileRepo.GetByID(ctx, chosenID)
	if err != nil {
		return nil, err
	}
	view, err := uc.profileView(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := uc.seenStore.AddSeenProfile(ctx, viewerSession, chosenID); err != nil {
		return nil, err
	}

	// Recount after the seen-set update so the number matches what the
	// next request will actually find.
	remaining, err := uc.profileRepo.CountCandidates(ctx, append(seen, chosenID), currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count remaining candidates: %w", err)
	}

	return &NextProfileResponse{Profile: view, RemainingCount: remaining}, nil
}

// ViewOne fetches a specific profile for spectating. Owners cannot view
// their own profiles in spectator mode.
func (uc *SpectatorUseCase) ViewOne(ctx context.Context, profileID int, currentUserID *int) (*ProfileView, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if currentUserID != nil && p.OwnedBy(*currentUserID) {
		return nil, domain.ErrOwnProfile
	}
	return uc.profileView(ctx, p)
}

// Track records one swipe event. Self-swipes are rejected with
// ErrOwnProfile and leave no row behind. Validation and persistence
// failures are logged and swallowed: tracking is fire-and-forget from
// the client's point of view.
func (uc *SpectatorUseCase) Track(ctx context.Context, profileID int, viewerSession string, currentUserID *int, req *TrackRequest) error {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	if currentUserID != nil && p.OwnedBy(*currentUserID) {
		uc.logger.Info().
			Int("profile_id", p.ID).
			Int("user_id", *currentUserID).
			Msg("blocked tracking own profile")
		return domain.ErrOwnProfile
	}

	record, err := domain.NewInteractionRecord(
		p.ID, viewerSession, domain.SwipeAction(req.Action),
		req.TimeSpent, req.ScrollDepth, req.ImageIndex,
	)
	if err != nil {
		uc.logger.Error().
			Int("profile_id", p.ID).
			Str("action", req.Action).
			Err(err).
			Msg("failed to track interaction")
		return nil
	}

	if err := uc.interactionRepo.Create(ctx, record); err != nil {
		uc.logger.Error().
			Int("profile_id", p.ID).
			Err(err).
			Msg("failed to persist interaction")
		return nil
	}

	uc.logger.Info().
		Int("profile_id", p.ID).
		Str("action", string(record.Action)).
		Msg("tracked interaction")
	return nil
}

// Reset clears the session's seen-set unconditionally.
func (uc *SpectatorUseCase) Reset(ctx context.Context, viewerSession string) error {
	return uc.seenStore.ClearSeen(ctx, viewerSession)
}

func (uc *SpectatorUseCase) profileView(ctx context.Context, p *domain.Profile) (*ProfileView, error) {
	images, err := uc.imageRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if images == nil {
		images = []*domain.ProfileImage{}
	}
	return &ProfileView{Profile: p, Images: images}, nil
}
