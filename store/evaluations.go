/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertEvaluation writes the evaluation for eval.AssetID as a single atomic
// conditional write: one evaluation document per asset, updated in place on
// re-evaluation. Concurrent evaluations of the same asset race benignly to
// last-writer-wins on a single document instead of duplicating history.
func (s *Store) UpsertEvaluation(ctx context.Context, eval *Evaluation) (*Evaluation, error) {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"score":            eval.Score,
			"summary":          eval.Summary,
			"size_compliance":  eval.SizeCompliance,
			"brand_compliance": eval.BrandCompliance,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"asset_id":   eval.AssetID,
			"created_at": now,
		},
	}

	var persisted Evaluation
	err := s.db.Collection(evaluationsColl).FindOneAndUpdate(ctx,
		bson.M{"asset_id": eval.AssetID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&persisted)
	if err != nil {
		return nil, fmt.Errorf("upserting evaluation for asset %s: %w", eval.AssetID.Hex(), err)
	}
	return &persisted, nil
}

// GetEvaluation looks up an evaluation by its hex identifier.
func (s *Store) GetEvaluation(ctx context.Context, id string) (*Evaluation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("evaluation %q: %w", id, ErrNotFound)
	}

	var eval Evaluation
	err = s.db.Collection(evaluationsColl).FindOne(ctx, bson.M{"_id": oid}).Decode(&eval)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("evaluation %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up evaluation %q: %w", id, err)
	}
	return &eval, nil
}

// GetEvaluationByAsset looks up the evaluation linked to an asset.
func (s *Store) GetEvaluationByAsset(ctx context.Context, assetID primitive.ObjectID) (*Evaluation, error) {
	var eval Evaluation
	err := s.db.Collection(evaluationsColl).FindOne(ctx, bson.M{"asset_id": assetID}).Decode(&eval)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("evaluation for asset %s: %w", assetID.Hex(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up evaluation for asset %s: %w", assetID.Hex(), err)
	}
	return &eval, nil
}

// ListEvaluations returns all evaluations sorted by final score, best first.
// This feeds presentation layers; the pipeline itself only writes.
func (s *Store) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	cur, err := s.db.Collection(evaluationsColl).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "score", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}

	var evals []Evaluation
	if err := cur.All(ctx, &evals); err != nil {
		return nil, fmt.Errorf("decoding evaluations: %w", err)
	}
	return evals, nil
}
