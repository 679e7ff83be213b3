// Package mongodb implements the repository contracts on the MongoDB driver.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const contactsCollection = "contacts"

type contactRepository struct {
	col *mongo.Collection
	log zerolog.Logger
}

// NewContactRepository wires the contacts collection.
func NewContactRepository(db *mongo.Database, logger zerolog.Logger) repository.ContactRepository {
	l := logger.With().Str("module", "repository").Str("component", "contacts").Logger()
	return &contactRepository{col: db.Collection(contactsCollection), log: l}
}

// EnsureIndexes creates the query indexes: email lookups, newest-first
// listings, and status filtering.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(contactsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create contact indexes: %w", err)
	}
	return nil
}

func (r *contactRepository) Insert(ctx context.Context, c model.Contact) (model.Contact, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.ContactStatusPending
	}

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return model.Contact{}, repository.MapMongoError(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return c, nil
}

func (r *contactRepository) ListRecent(ctx context.Context, limit int64) ([]model.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	defer cursor.Close(ctx)

	contacts := make([]model.Contact, 0, limit)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return contacts, nil
}
