package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
)

// RegisterValidations adds custom binding rules to gin's validator. It
// must run before any request is bound.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("swipeaction", func(fl validator.FieldLevel) bool {
			return domain.SwipeAction(fl.Field().String()).Valid()
		})
	}
}

// ErrorResponse is the error payload shape shared by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeDomainError maps domain errors onto HTTP statuses: validation
// failures become 422 with the field message, not-found sentinels 404,
// self-interaction 403. Anything else is a 500 with a generic message.
func writeDomainError(c *gin.Context, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Error()})
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrImageNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrOwnProfile):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
