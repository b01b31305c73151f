/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package evaluator orchestrates the evaluation pipeline: it resolves the
// asset and its brand profile, runs both scoring agents concurrently, feeds
// their results to the aggregator, and persists the combined evaluation under
// at-most-one-evaluation-per-asset semantics.
package evaluator

import (
	"context"
	"fmt"

	"brandlens.dev/brandlens/agents/aggregate"
	"brandlens.dev/brandlens/agents/brandcheck"
	"brandlens.dev/brandlens/agents/sizecheck"
	"brandlens.dev/brandlens/media"
	"brandlens.dev/brandlens/store"
	"github.com/chainguard-dev/clog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// Storage is the slice of the store the orchestrator needs.
type Storage interface {
	GetAsset(ctx context.Context, id string) (*store.Asset, error)
	GetBrand(ctx context.Context, brandID string) (*store.Brand, error)
	UpsertEvaluation(ctx context.Context, eval *store.Evaluation) (*store.Evaluation, error)
	LinkEvaluation(ctx context.Context, assetID, evaluationID primitive.ObjectID) error
}

// Evaluator runs the full evaluation pipeline for one asset at a time.
type Evaluator struct {
	storage Storage
	fetcher media.Fetcher
	size    sizecheck.Interface
	brand   brandcheck.Interface
	agg     aggregate.Interface
}

// New wires an Evaluator from its collaborators.
func New(storage Storage, fetcher media.Fetcher, size sizecheck.Interface, brand brandcheck.Interface, agg aggregate.Interface) *Evaluator {
	return &Evaluator{
		storage: storage,
		fetcher: fetcher,
		size:    size,
		brand:   brand,
		agg:     agg,
	}
}

// Evaluate produces the persisted evaluation for the asset. Any failure -
// missing asset or brand, unreachable media, a failed model call, exhausted
// extraction - aborts the whole request and leaves the store untouched: a
// partial evaluation would violate the entity's required fields.
func (e *Evaluator) Evaluate(ctx context.Context, assetID string) (*store.Evaluation, error) {
	log := clog.FromContext(ctx)

	asset, err := e.storage.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	brandProfile, err := e.storage.GetBrand(ctx, asset.BrandID)
	if err != nil {
		return nil, err
	}

	// One fetch feeds both agents: the size agent needs intrinsic dimensions,
	// the brand agent needs the bytes themselves.
	blob, err := e.fetcher.Fetch(ctx, asset.MediaPath)
	if err != nil {
		return nil, err
	}

	width, height, format := asset.Width, asset.Height, media.FormatName(blob.ContentType)
	if width == 0 || height == 0 {
		meta, err := media.Probe(blob)
		if err != nil {
			return nil, fmt.Errorf("resolving dimensions for asset %s: %w", assetID, err)
		}
		width, height, format = meta.Width, meta.Height, meta.Format
	}

	log.With("asset", assetID).
		With("brand", asset.BrandID).
		With("dimensions", fmt.Sprintf("%dx%d", width, height)).
		Info("Starting evaluation")

	// Both scoring agents run concurrently on disjoint inputs; the aggregator
	// waits on the join. Either failure cancels the sibling call and fails
	// the evaluation - no partial aggregation.
	var sizeRes *sizecheck.Result
	var brandRes *brandcheck.Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sizeRes, err = e.size.Check(gctx, &sizecheck.Request{
			Width:   width,
			Height:  height,
			Format:  format,
			Prompt:  asset.Prompt,
			Channel: asset.Channel,
		})
		if err != nil {
			return fmt.Errorf("size compliance agent: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		brandRes, err = e.brand.Check(gctx, &brandcheck.Request{
			Prompt: asset.Prompt,
			Brand: brandcheck.Profile{
				Name:        brandProfile.Name,
				Description: brandProfile.Description,
				Style:       brandProfile.Style,
				Vision:      brandProfile.Vision,
				Voice:       brandProfile.Voice,
				Colors:      brandProfile.Colors,
			},
			Media: blob,
		})
		if err != nil {
			return fmt.Errorf("brand compliance agent: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aggRes, err := e.agg.Combine(ctx, &aggregate.Request{Size: sizeRes, Brand: brandRes})
	if err != nil {
		return nil, fmt.Errorf("aggregator agent: %w", err)
	}

	persisted, err := e.storage.UpsertEvaluation(ctx, &store.Evaluation{
		AssetID: asset.ID,
		Score:   aggRes.EndScore,
		Summary: aggRes.Summary,
		SizeCompliance: store.SizeCompliance{
			Score:     sizeRes.Score,
			Reasoning: sizeRes.Reasoning,
			IsOptimal: sizeRes.IsOptimal,
		},
		BrandCompliance: store.BrandCompliance{
			Score:            brandRes.Score,
			StyleAlignment:   brandRes.StyleAlignment,
			ColorCompliance:  brandRes.ColorCompliance,
			VoiceConsistency: brandRes.VoiceConsistency,
			VisionAlignment:  brandRes.VisionAlignment,
			Reasoning:        brandRes.Reasoning,
			Strengths:        brandRes.Strengths,
			Improvements:     brandRes.Improvements,
		},
	})
	if err != nil {
		return nil, err
	}

	// The link write only happens on first evaluation; afterwards the asset
	// already points at the stable evaluation document.
	if asset.EvaluationID == nil || *asset.EvaluationID != persisted.ID {
		if err := e.storage.LinkEvaluation(ctx, asset.ID, persisted.ID); err != nil {
			return nil, err
		}
	}

	log.With("asset", assetID).
		With("score", persisted.Score).
		Info("Evaluation complete")

	return persisted, nil
}
