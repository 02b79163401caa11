package internal

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrRequired      = errors.New("required field")
	ErrInvalidFormat = errors.New("invalid format")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrNoSession    = errors.New("no session")

	ErrInvalidPostalCode  = errors.New("postal code must have 8 digits")
	ErrPostalCodeNotFound = errors.New("postal code not found")
)

const genericErrorMessage = "request failed, please try again"

// AppError is the JSON error body served by the fake API.
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func NewAppError(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}

func (e *AppError) Error() string { return e.Message }

// ValidationError names the form field that blocked a submission.
type ValidationError struct {
	Field string
	Err   error
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer (or a transport failure when Status is 0).
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = genericErrorMessage
	}
	if e.Status == 0 {
		return msg
	}
	return fmt.Sprintf("%s (status %d)", msg, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// UserMessage is the text a caller shows for err, without transport detail.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return genericErrorMessage
	}
	return err.Error()
}
