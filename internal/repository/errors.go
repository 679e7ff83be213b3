package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Domain-level errors bubbled up from repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// MapMongoError translates common driver errors to domain errors. Only what
// higher layers handle explicitly is mapped; everything else passes through.
func MapMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	return err
}
