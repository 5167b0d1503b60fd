package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/checkout"
	"glutivia/internal/genai"
	"glutivia/internal/repository"
	"glutivia/internal/service"
)

func mapErrorToStatus(err error) int {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, service.ErrCheckoutBusy),
		errors.Is(err, service.ErrStaleGeneration):
		return http.StatusConflict
	case errors.Is(err, genai.ErrGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) (int, gin.H) {
	status := mapErrorToStatus(err)
	body := gin.H{"error": err.Error()}
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	if status == http.StatusInternalServerError {
		body["error"] = "internal error"
	}
	return status, body
}
