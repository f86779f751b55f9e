package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/middleware"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/spectator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileRepo struct {
	profiles map[int]*domain.Profile
}

func (s *stubProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (s *stubProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (s *stubProfileRepo) Delete(ctx context.Context, id int) error            { return nil }
func (s *stubProfileRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Profile, error) {
	return nil, nil
}

func (s *stubProfileRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubProfileRepo) CandidateIDs(ctx context.Context, excludeIDs []int, excludeOwner *int) ([]int, error) {
	excluded := map[int]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var ids []int
	for id, p := range s.profiles {
		if p.Active && !excluded[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *stubProfileRepo) CountCandidates(ctx context.Context, excludeIDs []int, excludeOwner *int) (int, error) {
	ids, err := s.CandidateIDs(ctx, excludeIDs, excludeOwner)
	return len(ids), err
}

type stubImageRepo struct{}

func (s *stubImageRepo) Create(ctx context.Context, img *domain.ProfileImage) error { return nil }
func (s *stubImageRepo) GetByID(ctx context.Context, id int) (*domain.ProfileImage, error) {
	return nil, domain.ErrImageNotFound
}
func (s *stubImageRepo) ListByProfile(ctx context.Context, profileID int) ([]*domain.ProfileImage, error) {
	return nil, nil
}
func (s *stubImageRepo) Delete(ctx context.Context, id int) error { return nil }

type stubInteractionRepo struct {
	records []*domain.InteractionRecord
}

func (s *stubInteractionRepo) Create(ctx context.Context, r *domain.InteractionRecord) error {
	s.records = append(s.records, r)
	return nil
}
func (s *stubInteractionRepo) ListByProfile(ctx context.Context, profileID int) ([]*domain.InteractionRecord, error) {
	return s.records, nil
}
func (s *stubInteractionRepo) ListRecentByProfile(ctx context.Context, profileID, limit int) ([]*domain.InteractionRecord, error) {
	return s.records, nil
}
func (s *stubInteractionRepo) CountByProfile(ctx context.Context, profileID int) (int, error) {
	return len(s.records), nil
}

type stubSeenStore struct {
	seen map[string][]int
}

func (s *stubSeenStore) SeenProfileIDs(ctx context.Context, session string) ([]int, error) {
	return s.seen[session], nil
}
func (s *stubSeenStore) AddSeenProfile(ctx context.Context, session string, profileID int) error {
	s.seen[session] = append(s.seen[session], profileID)
	return nil
}
func (s *stubSeenStore) ClearSeen(ctx context.Context, session string) error {
	delete(s.seen, session)
	return nil
}

func newSpectatorRouter(profiles map[int]*domain.Profile, interactions *stubInteractionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()

	uc := spectator.NewSpectatorUseCase(
		&stubProfileRepo{profiles: profiles},
		&stubImageRepo{},
		interactions,
		&stubSeenStore{seen: map[string][]int{}},
		zerolog.Nop(),
	)
	h := NewSpectatorHandler(uc)

	router := gin.New()
	group := router.Group("/spectator")
	group.Use(middleware.EnsureViewerSession())
	{
		group.GET("/index", h.Index)
		group.GET("/show/:id", h.Show)
		group.POST("/track/:id", h.Track)
		group.POST("/reset", h.Reset)
	}
	return router
}

func activeProfile(id int) *domain.Profile {
	return &domain.Profile{ID: id, Name: "P", Age: 25, Active: true}
}

func TestIndexIssuesViewerSessionCookie(t *testing.T) {
	router := newSpectatorRouter(map[int]*domain.Profile{1: activeProfile(1)}, &stubInteractionRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/spectator/index", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "viewer_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Contains(t, w.Body.String(), `"profile"`)
	assert.Contains(t, w.Body.String(), `"remaining_count"`)
}

func TestShowUnknownProfileIs404(t *testing.T) {
	router := newSpectatorRouter(map[int]*domain.Profile{}, &stubInteractionRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/spectator/show/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackRecordsAndReturnsOK(t *testing.T) {
	interactions := &stubInteractionRepo{}
	router := newSpectatorRouter(map[int]*domain.Profile{1: activeProfile(1)}, interactions)

	body := `{"action_type":"right_swipe","time_spent":12,"scroll_depth":80,"image_index":0}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/spectator/track/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, interactions.records, 1)
	assert.Equal(t, domain.SwipeRight, interactions.records[0].Action)
	assert.Equal(t, 12, interactions.records[0].TimeSpent)
}

func TestTrackBadPayloadStillSucceeds(t *testing.T) {
	interactions := &stubInteractionRepo{}
	router := newSpectatorRouter(map[int]*domain.Profile{1: activeProfile(1)}, interactions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/spectator/track/1", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Fire-and-forget: the client sees success, nothing is written.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, interactions.records)
}

func TestTrackUnknownProfileIs404(t *testing.T) {
	router := newSpectatorRouter(map[int]*domain.Profile{}, &stubInteractionRepo{})

	body := `{"action_type":"left_swipe","time_spent":1,"scroll_depth":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/spectator/track/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetReturnsNoContent(t *testing.T) {
	router := newSpectatorRouter(map[int]*domain.Profile{}, &stubInteractionRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/spectator/reset", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
