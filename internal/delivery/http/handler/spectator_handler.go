package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/middleware"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/spectator"
)

type SpectatorHandler struct {
	spectatorUseCase *spectator.SpectatorUseCase
}

func NewSpectatorHandler(spectatorUseCase *spectator.SpectatorUseCase) *SpectatorHandler {
	return &SpectatorHandler{spectatorUseCase: spectatorUseCase}
}

// Index handles GET /spectator/index: the next random unseen profile.
func (h *SpectatorHandler) Index(c *gin.Context) {
	resp, err := h.spectatorUseCase.SelectNext(
		c.Request.Context(),
		middleware.ViewerSession(c),
		middleware.CurrentUserID(c),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to select profile"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Show handles GET /spectator/show/:id
func (h *SpectatorHandler) Show(c *gin.Context) {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	view, err := h.spectatorUseCase.ViewOne(c.Request.Context(), profileID, middleware.CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, view)
}

// Track handles POST /spectator/track/:id. Validation failures are
// swallowed upstream: the client sees success for anything except a
// missing profile or a self-swipe.
func (h *SpectatorHandler) Track(c *gin.Context) {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	var req spectator.TrackRequest
	if err := c.ShouldBind(&req); err != nil {
		// Unparseable payloads go through the same fire-and-forget path
		// as validation failures.
		req = spectator.TrackRequest{}
	}

	err = h.spectatorUseCase.Track(
		c.Request.Context(),
		profileID,
		middleware.ViewerSession(c),
		middleware.CurrentUserID(c),
		&req,
	)
	if err != nil {
		if errors.Is(err, domain.ErrOwnProfile) {
			c.Status(http.StatusForbidden)
			return
		}
		writeDomainError(c, err, "failed to track interaction")
		return
	}

	c.Status(http.StatusOK)
}

// Reset handles POST /spectator/reset
func (h *SpectatorHandler) Reset(c *gin.Context) {
	if err := h.spectatorUseCase.Reset(c.Request.Context(), middleware.ViewerSession(c)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to reset"})
		return
	}
	c.Status(http.StatusNoContent)
}
