/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package store persists assets, brand profiles, and evaluations in MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound signals a missing document, distinct from transient database
// errors: callers must not retry it.
var ErrNotFound = errors.New("not found")

const (
	assetsColl      = "assets"
	brandsColl      = "brands"
	evaluationsColl = "evaluations"
)

// Store wraps a MongoDB database handle.
type Store struct {
	db *mongo.Database
}

// Open connects to MongoDB and verifies the connection.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return &Store{db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the indexes the store relies on. The unique index on
// evaluations.asset_id is what makes the upsert race-free: concurrent
// re-evaluations of one asset collapse onto a single document.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(evaluationsColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "asset_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating evaluations index: %w", err)
	}

	_, err = s.db.Collection(brandsColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "brand_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating brands index: %w", err)
	}

	_, err = s.db.Collection(assetsColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("creating assets index: %w", err)
	}
	return nil
}
