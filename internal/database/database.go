// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/metrics"
	"github.com/tomtom215/videotube/internal/models"
)

// defaultOpTimeout bounds operations whose context carries no deadline.
const defaultOpTimeout = 30 * time.Second

// DB wraps the MongoDB client and provides data access methods
type DB struct {
	client    *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
	now       func() time.Time
}

// New connects to MongoDB, verifies the connection with a ping and returns
// a DB bound to cfg.Database. Indexes are not created here; call
// EnsureIndexes once at startup.
func New(ctx context.Context, cfg *config.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName("videotube")
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logging.Info().
		Str("database", cfg.Database).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return NewFromClient(client, cfg.Database), nil
}

// NewFromClient wraps an already connected client. Used by integration tests.
func NewFromClient(client *mongo.Client, database string) *DB {
	return &DB{
		client:    client,
		db:        client.Database(database),
		opTimeout: defaultOpTimeout,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Close disconnects the client
func (db *DB) Close(ctx context.Context) error {
	if db == nil || db.client == nil {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}

// Ping checks the primary is reachable
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.client.Ping(ctx, readpref.Primary())
	db.observe("ping", "admin", start, err)
	return err
}

// Name returns the database name
func (db *DB) Name() string {
	return db.db.Name()
}

func (db *DB) coll(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// ensureContext applies the default timeout if ctx has no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), db.opTimeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, db.opTimeout)
	}

	return ctx, func() {}
}

// observe records an operation metric. A missing document is an expected
// outcome and is not counted as an error.
func (db *DB) observe(operation, collection string, start time.Time, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordDBOperation(operation, collection, time.Since(start), err)
}

// collections lists every collection the service reads or writes
var collections = []string{
	models.CollectionUsers,
	models.CollectionVideos,
	models.CollectionComments,
	models.CollectionTweets,
	models.CollectionPlaylists,
	models.CollectionSubscriptions,
	models.CollectionLikes,
}
