// Package response builds the error bodies of the fake API. Success bodies are
// the bare resource, as the real API sends them.
package response

import (
	"net/http"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

func BadRequest(msg string) *internal.AppError {
	return internal.NewAppError(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *internal.AppError {
	return internal.NewAppError(http.StatusUnauthorized, msg)
}

func NotFound(msg string) *internal.AppError {
	return internal.NewAppError(http.StatusNotFound, msg)
}

func Conflict(msg string) *internal.AppError {
	return internal.NewAppError(http.StatusConflict, msg)
}

func InternalError(msg string) *internal.AppError {
	return internal.NewAppError(http.StatusInternalServerError, msg)
}

func NewAppError(status int, msg string) *internal.AppError {
	return internal.NewAppError(status, msg)
}
