// Package service holds business logic orchestration across the upstream
// client, repositories and handlers. Kept intentionally lean: use-case
// coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures
// (maps to HTTP 400). Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrUserNotFound marks a basic-profile response with no matched user. It is
// still subject to the retry budget; only the final failure surfaces it.
var ErrUserNotFound = errors.New("user not found")

// UserNotFoundError names the username that did not resolve, so the handler
// can echo it verbatim.
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string { return fmt.Sprintf("User not found: %s", e.Username) }
func (e *UserNotFoundError) Unwrap() error { return ErrUserNotFound }

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to
// ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string {
	if len(e.fields) > 0 {
		return fmt.Sprintf("%s: %s", e.fields[0].Field, e.fields[0].Message)
	}
	return ErrInvalidInput.Error()
}
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field
// errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// StatsService runs the aggregation pipeline against the configured target
// user. One call is one full aggregation cycle; results are never cached.
type StatsService interface {
	FetchStats(ctx context.Context) (model.StatsOverview, error)
}

// ContactInput is a raw contact-form submission plus request metadata
// captured by the handler.
type ContactInput struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Website   string `json:"website" validate:"omitempty,url"`
	Message   string `json:"message" validate:"omitempty,max=1000"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
	Referrer  string `json:"-"`
}

// ContactService defines contact-form use cases.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (model.Contact, error)
	ListRecent(ctx context.Context) ([]model.Contact, error)
}
