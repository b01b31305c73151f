/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package sizecheck

import (
	"context"
	"errors"
	"fmt"

	"brandlens.dev/brandlens/agents/promptbuilder"
)

// Request carries the resolved media metadata and creative context for a size
// compliance check. Dimensions must be resolved from the asset before the
// agent is invoked; the agent never fetches media itself.
type Request struct {
	// Width and Height are the intrinsic pixel dimensions of the media.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the encoding format, e.g. "jpeg" or "mp4".
	Format string `json:"format"`

	// Prompt is the free-text creative prompt the asset was generated from.
	Prompt string `json:"prompt"`

	// Channel is the target distribution channel, e.g. "Instagram".
	Channel string `json:"channel"`
}

// Bind implements promptbuilder.Bindable.
func (r *Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindString("width", fmt.Sprintf("%d", r.Width))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("height", fmt.Sprintf("%d", r.Height))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("aspect_ratio", fmt.Sprintf("%.2f", float64(r.Width)/float64(r.Height)))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("format", r.Format)
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("user_prompt", r.Prompt)
	if err != nil {
		return nil, err
	}
	return p.BindString("channel", r.Channel)
}

// Validate reports whether the request is complete enough to score.
func (r *Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Channel == "" {
		return errors.New("channel is required")
	}
	return nil
}

// Result is the structured size compliance judgment. The model is instructed
// to fill every field, but a response missing fields passes through as-is:
// the extractor guards structure, not schema.
type Result struct {
	// Score is the size compliance score from 0 to 10.
	Score float64 `json:"score" jsonschema:"required,description=Size compliance score from 0 to 10"`

	// Reasoning is a brief explanation of the score.
	Reasoning string `json:"reasoning" jsonschema:"required,description=Brief explanation of why this score"`

	// IsOptimal is true only on an exact dimension or aspect-ratio match.
	IsOptimal bool `json:"isOptimal" jsonschema:"required,description=True only if the dimensions are an exact match"`
}

// Interface is the contract for size compliance scoring.
type Interface interface {
	// Check issues one model call and returns the structured judgment.
	Check(ctx context.Context, req *Request) (*Result, error)
}
