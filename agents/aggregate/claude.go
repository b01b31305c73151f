/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package aggregate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"github.com/anthropics/anthropic-sdk-go"
)

// brandFloor and scoreCeiling define the guardrail: a brand score below the
// floor caps the final score at the ceiling no matter what the size agent
// said. The instruction alone is not trusted; the cap is re-applied in code.
const (
	brandFloor   = 3.0
	scoreCeiling = 4.0
)

// claude implements Interface using the one-shot Claude executor.
type claude struct {
	exec claudeexecutor.Interface[*Request, *Result]
}

// New creates a Claude-backed aggregator agent.
func New(client anthropic.Client, opts ...claudeexecutor.Option[*Request, *Result]) (Interface, error) {
	exec, err := claudeexecutor.New[*Request, *Result](client, combinePrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating aggregator executor: %w", err)
	}
	return &claude{exec: exec}, nil
}

// Combine implements Interface.
func (c *claude) Combine(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid aggregation request: %w", err)
	}

	res, err := c.exec.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("model produced no aggregation result")
	}

	applyGuardrail(res, req.Brand.Score)
	return res, nil
}

// applyGuardrail clamps the end score into [0, 10], caps it when the brand
// score is below the floor, and rounds to one decimal place.
func applyGuardrail(res *Result, brandScore float64) {
	if res.EndScore < 0 {
		res.EndScore = 0
	}
	if res.EndScore > 10 {
		res.EndScore = 10
	}
	if brandScore < brandFloor && res.EndScore > scoreCeiling {
		res.EndScore = scoreCeiling
	}
	res.EndScore = math.Round(res.EndScore*10) / 10
}
