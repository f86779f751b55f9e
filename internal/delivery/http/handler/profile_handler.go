package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/middleware"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/analytics"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/profile"
)

const maxImageUploadBytes = 10 << 20 // 10 MB

type ProfileHandler struct {
	profileUseCase   *profile.ProfileUseCase
	analyticsUseCase *analytics.AnalyticsUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, analyticsUseCase *analytics.AnalyticsUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:   profileUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// List handles GET /profiles
func (h *ProfileHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	profiles, err := h.profileUseCase.List(c.Request.Context(), *userID)
	if err != nil {
		writeDomainError(c, err, "failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// Create handles POST /profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.profileUseCase.Create(c.Request.Context(), *userID, &req)
	if err != nil {
		writeDomainError(c, err, "failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get handles GET /profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		writeDomainError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /profiles/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.profileUseCase.Update(c.Request.Context(), userID, profileID, &req)
	if err != nil {
		writeDomainError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /profiles/:id
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.Delete(c.Request.Context(), userID, profileID); err != nil {
		writeDomainError(c, err, "failed to delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}

// Analytics handles GET /profiles/:id/analytics
func (h *ProfileHandler) Analytics(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	resp, err := h.analyticsUseCase.ProfileAnalytics(c.Request.Context(), userID, profileID)
	if err != nil {
		writeDomainError(c, err, "failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadImage handles POST /profiles/:id/images
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "image is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read upload"})
		return
	}
	defer file.Close()

	image, err := h.profileUseCase.AddImage(c.Request.Context(), userID, profileID, file)
	if err != nil {
		writeDomainError(c, err, "failed to save image")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteImage handles DELETE /profiles/:id/images/:image_id
func (h *ProfileHandler) DeleteImage(c *gin.Context) {
	userID, profileID, ok := h.ownerAndProfileID(c)
	if !ok {
		return
	}

	imageID, err := strconv.Atoi(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image_id"})
		return
	}

	if err := h.profileUseCase.RemoveImage(c.Request.Context(), userID, profileID, imageID); err != nil {
		writeDomainError(c, err, "failed to delete image")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) ownerAndProfileID(c *gin.Context) (int, int, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, 0, false
	}
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return 0, 0, false
	}
	return *userID, profileID, true
}
