// Package repository owns storage contracts, the MongoDB client lifecycle and
// driver-to-domain error translation. Per-collection operations live in the
// mongodb sub-package.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Repository encapsulates the MongoDB client and the service database handle.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB using the configured URI and verifies the
// connection with a bounded ping before returning.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Repository, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetAppName(cfg.App.Name).
		SetMaxPoolSize(cfg.Mongo.MaxPoolSize).
		SetConnectTimeout(time.Duration(cfg.Mongo.ConnectTimeout) * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Bounded ping so a bad URI fails at startup instead of on first request.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().
		Str("database", cfg.Mongo.Database).
		Uint64("max_pool_size", cfg.Mongo.MaxPoolSize).
		Msg("Successfully connected to MongoDB")

	return &Repository{client: client, db: client.Database(cfg.Mongo.Database)}, nil
}

// Database exposes the service database handle for collection wiring.
func (r *Repository) Database() *mongo.Database { return r.db }

// Client exposes the underlying client, mainly for the readiness pinger.
func (r *Repository) Client() *mongo.Client { return r.client }

// Close releases all driver resources.
func (r *Repository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
