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
	"go.mongodb.org/mongo-driver/mongo"
)

// GetBrand looks up a brand profile by its external brand identifier.
func (s *Store) GetBrand(ctx context.Context, brandID string) (*Brand, error) {
	var brand Brand
	err := s.db.Collection(brandsColl).FindOne(ctx, bson.M{"brand_id": brandID}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("brand %q: %w", brandID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up brand %q: %w", brandID, err)
	}
	return &brand, nil
}

// SeedBrands replaces the brands collection with the provided records.
// Used by data seeding only.
func (s *Store) SeedBrands(ctx context.Context, brands []Brand) error {
	coll := s.db.Collection(brandsColl)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing brands: %w", err)
	}
	if len(brands) == 0 {
		return nil
	}
	docs := make([]any, 0, len(brands))
	for _, b := range brands {
		docs = append(docs, b)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting brands: %w", err)
	}
	return nil
}
