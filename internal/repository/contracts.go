package repository

import (
	"context"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
)

// Pinger represents a minimal readiness probe capability, decoupling health
// checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ContactRepository declares persistence operations for contact submissions.
// Implementations return domain models and surface domain errors from
// errors.go rather than driver errors.
type ContactRepository interface {
	// Insert stores a submission and returns it with its generated ID and
	// timestamps populated.
	Insert(ctx context.Context, c model.Contact) (model.Contact, error)
	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, limit int64) ([]model.Contact, error)
}
