package types

import (
	"errors"
	"fmt"
	"strings"
)

// CustomError carries an HTTP status and an error type back to the fiber error handler.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("username and password required")
	ErrNoSession          = errors.New("no active session")
	ErrMalformedData      = errors.New("malformed persisted data")
)

// ValidationError lists the form fields that were missing or failed to parse.
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError reports a record id absent from its collection.
type NotFoundError struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
