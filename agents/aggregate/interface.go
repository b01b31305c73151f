/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package aggregate

import (
	"context"
	"errors"

	"brandlens.dev/brandlens/agents/brandcheck"
	"brandlens.dev/brandlens/agents/promptbuilder"
	"brandlens.dev/brandlens/agents/sizecheck"
)

// Request carries both partial judgments to be combined into one final score.
type Request struct {
	Size  *sizecheck.Result
	Brand *brandcheck.Result
}

// Bind implements promptbuilder.Bindable. Both partial results are embedded
// in the prompt as JSON.
func (r *Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindJSON("size_result", r.Size)
	if err != nil {
		return nil, err
	}
	return p.BindJSON("brand_result", r.Brand)
}

// Validate reports whether both partial results are present.
func (r *Request) Validate() error {
	if r.Size == nil {
		return errors.New("size compliance result is required")
	}
	if r.Brand == nil {
		return errors.New("brand compliance result is required")
	}
	return nil
}

// Result is the final aggregated judgment.
type Result struct {
	// EndScore is the final score from 0 to 10, one decimal place.
	EndScore float64 `json:"endScore" jsonschema:"required,description=Final score from 0 to 10 with 1 decimal place"`

	// Summary is a 2-3 sentence explanation of the final score.
	Summary string `json:"summary" jsonschema:"required,description=2-3 sentence explanation of the final score"`
}

// Interface is the contract for aggregation.
type Interface interface {
	// Combine issues one model call embedding both partial results and
	// returns the guardrailed composite. If extraction fails here the whole
	// evaluation fails; there is no partial-success state.
	Combine(ctx context.Context, req *Request) (*Result, error)
}
