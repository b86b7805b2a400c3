// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrUsernameAlreadyExists indicates the username is taken.
type ErrUsernameAlreadyExists struct {
	Username string
}

func (e *ErrUsernameAlreadyExists) Error() string {
	return fmt.Sprintf("username already registered: %s", e.Username)
}

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrNotFound indicates a named resource was not found.
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrLabelConflict indicates a label with the same name already exists.
type ErrLabelConflict struct {
	Name string
}

func (e *ErrLabelConflict) Error() string {
	return fmt.Sprintf("label already exists: %s", e.Name)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAssistantUnavailable indicates the generation assistant failed to
// initialize and the endpoint cannot serve requests.
type ErrAssistantUnavailable struct{}

func (e *ErrAssistantUnavailable) Error() string {
	return "assistant is not available"
}

// HTTPStatus maps an error to the appropriate HTTP status code.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUsernameAlreadyExists, *ErrEmailAlreadyExists, *ErrLabelConflict:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAssistantUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
