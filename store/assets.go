/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAsset looks up an asset by its hex identifier.
func (s *Store) GetAsset(ctx context.Context, id string) (*Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}

	var asset Asset
	err = s.db.Collection(assetsColl).FindOne(ctx, bson.M{"_id": oid}).Decode(&asset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up asset %q: %w", id, err)
	}
	return &asset, nil
}

// ListAssets returns all assets, newest first.
func (s *Store) ListAssets(ctx context.Context) ([]Asset, error) {
	cur, err := s.db.Collection(assetsColl).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	var assets []Asset
	if err := cur.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("decoding assets: %w", err)
	}
	return assets, nil
}

// LinkEvaluation sets the asset's evaluation link. The $set is idempotent, so
// re-linking the same evaluation is harmless.
func (s *Store) LinkEvaluation(ctx context.Context, assetID, evaluationID primitive.ObjectID) error {
	res, err := s.db.Collection(assetsColl).UpdateByID(ctx, assetID,
		bson.M{"$set": bson.M{"evaluation_id": evaluationID}})
	if err != nil {
		return fmt.Errorf("linking evaluation to asset %s: %w", assetID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("asset %s: %w", assetID.Hex(), ErrNotFound)
	}
	return nil
}

// SeedAssets replaces the assets collection with the provided records.
// Used by data seeding only.
func (s *Store) SeedAssets(ctx context.Context, assets []Asset) error {
	coll := s.db.Collection(assetsColl)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing assets: %w", err)
	}
	if len(assets) == 0 {
		return nil
	}
	docs := make([]any, 0, len(assets))
	for _, a := range assets {
		docs = append(docs, a)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting assets: %w", err)
	}
	return nil
}
