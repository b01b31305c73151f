/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package brandcheck

import (
	"context"
	"errors"

	"brandlens.dev/brandlens/agents/promptbuilder"
	"brandlens.dev/brandlens/media"
)

// Profile is the brand identity an asset is judged against. Every field but
// Name is optional: missing guidance must not block evaluation, it degrades
// into a general-coherence judgment.
type Profile struct {
	Name        string
	Description string
	Style       string
	Vision      string
	Voice       string
	Colors      string
}

// Request carries the creative context and the media itself for a brand
// compliance check.
type Request struct {
	// Prompt is the free-text creative prompt the asset was generated from.
	Prompt string

	// Brand is the brand profile to judge against.
	Brand Profile

	// Media is the fetched asset; it is attached to the model call as an
	// image block rather than bound into the prompt text.
	Media *media.Blob
}

// notProvided stands in for absent optional brand fields so the prompt always
// has a complete brand section.
const notProvided = "Not provided"

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

// Bind implements promptbuilder.Bindable.
func (r *Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindString("user_prompt", r.Prompt)
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("brand_name", r.Brand.Name)
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("brand_description", orNotProvided(r.Brand.Description))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("brand_style", orNotProvided(r.Brand.Style))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("brand_vision", orNotProvided(r.Brand.Vision))
	if err != nil {
		return nil, err
	}
	p, err = p.BindString("brand_voice", orNotProvided(r.Brand.Voice))
	if err != nil {
		return nil, err
	}
	return p.BindString("brand_colors", orNotProvided(r.Brand.Colors))
}

// Validate reports whether the request is complete enough to score.
func (r *Request) Validate() error {
	if r.Brand.Name == "" {
		return errors.New("brand name is required")
	}
	if r.Media == nil || len(r.Media.Data) == 0 {
		return errors.New("media is required")
	}
	return nil
}

// Result is the structured brand compliance judgment: an overall score plus
// four weighted sub-scores, all 0-10.
type Result struct {
	// Score is the overall brand alignment score.
	Score float64 `json:"score" jsonschema:"required,description=Overall brand alignment score from 0 to 10"`

	// StyleAlignment scores visual style fit (30% weight).
	StyleAlignment float64 `json:"styleAlignment" jsonschema:"required,description=Visual style alignment from 0 to 10"`

	// ColorCompliance scores color palette fit (25% weight).
	ColorCompliance float64 `json:"colorCompliance" jsonschema:"required,description=Color palette compliance from 0 to 10"`

	// VoiceConsistency scores voice and tone fit (25% weight).
	VoiceConsistency float64 `json:"voiceConsistency" jsonschema:"required,description=Brand voice consistency from 0 to 10"`

	// VisionAlignment scores mission/vision fit (20% weight).
	VisionAlignment float64 `json:"visionAlignment" jsonschema:"required,description=Brand vision alignment from 0 to 10"`

	// Reasoning explains the overall score.
	Reasoning string `json:"reasoning" jsonschema:"required,description=Detailed explanation of the score"`

	// Strengths lists what works well for the brand.
	Strengths string `json:"strengths" jsonschema:"required,description=What works well for the brand"`

	// Improvements lists what could be more on-brand.
	Improvements string `json:"improvements" jsonschema:"required,description=What could be more on-brand"`
}

// Interface is the contract for brand compliance scoring.
type Interface interface {
	// Check issues one model call with the media attached and returns the
	// structured judgment.
	Check(ctx context.Context, req *Request) (*Result, error)
}
