/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package aggregate

import (
	"context"
	"errors"
	"testing"

	"brandlens.dev/brandlens/agents/brandcheck"
	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"brandlens.dev/brandlens/agents/sizecheck"
	"github.com/stretchr/testify/require"
)

func TestRequestBind(t *testing.T) {
	req := &Request{
		Size:  &sizecheck.Result{Score: 9, Reasoning: "close match", IsOptimal: true},
		Brand: &brandcheck.Result{Score: 7, StyleAlignment: 8, Reasoning: "mostly on brand", Strengths: "palette", Improvements: "typography"},
	}

	bound, err := req.Bind(combinePrompt)
	require.NoError(t, err)

	out, err := bound.Build()
	require.NoError(t, err)

	require.Contains(t, out, `"score": 9`)
	require.Contains(t, out, `"isOptimal": true`)
	require.Contains(t, out, `"styleAlignment": 8`)
	require.Contains(t, out, "mostly on brand")
	require.Contains(t, out, "20% weight")
	require.Contains(t, out, "80% weight")
	require.Contains(t, out, `"endScore"`)
}

func TestRequestValidate(t *testing.T) {
	size := &sizecheck.Result{Score: 5}
	brand := &brandcheck.Result{Score: 5}

	require.NoError(t, (&Request{Size: size, Brand: brand}).Validate())
	require.Error(t, (&Request{Brand: brand}).Validate())
	require.Error(t, (&Request{Size: size}).Validate())
}

type fakeExecutor struct {
	result *Result
	err    error
}

func (f *fakeExecutor) Execute(_ context.Context, _ *Request, _ ...claudeexecutor.Attachment) (*Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return nil, nil
	}
	// Copy so the guardrail can mutate freely across test cases.
	out := *f.result
	return &out, nil
}

func TestCombineGuardrail(t *testing.T) {
	tests := []struct {
		name       string
		brandScore float64
		modelScore float64
		wantMax    float64
		wantExact  *float64
	}{{
		name:       "low brand score caps the final score",
		brandScore: 2,
		modelScore: 9.0, // model ignored the instruction
		wantMax:    4.0,
	}, {
		name:       "boundary brand score is not capped",
		brandScore: 3,
		modelScore: 8.4,
		wantExact:  ptr(8.4),
	}, {
		name:       "healthy scores pass through",
		brandScore: 9,
		modelScore: 9.2,
		wantExact:  ptr(9.2),
	}, {
		name:       "score above range clamps to 10",
		brandScore: 9,
		modelScore: 11.3,
		wantExact:  ptr(10.0),
	}, {
		name:       "negative score clamps to 0",
		brandScore: 9,
		modelScore: -1,
		wantExact:  ptr(0.0),
	}, {
		name:       "extra precision rounds to one decimal",
		brandScore: 8,
		modelScore: 7.4499,
		wantExact:  ptr(7.4),
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := &claude{exec: &fakeExecutor{
				result: &Result{EndScore: tt.modelScore, Summary: "summary"},
			}}

			got, err := agent.Combine(context.Background(), &Request{
				Size:  &sizecheck.Result{Score: 9, IsOptimal: true},
				Brand: &brandcheck.Result{Score: tt.brandScore},
			})
			require.NoError(t, err)

			if tt.wantExact != nil {
				require.Equal(t, *tt.wantExact, got.EndScore)
			} else {
				require.LessOrEqual(t, got.EndScore, tt.wantMax)
			}
			require.GreaterOrEqual(t, got.EndScore, 0.0)
			require.LessOrEqual(t, got.EndScore, 10.0)
		})
	}
}

func TestCombineFailurePropagates(t *testing.T) {
	boom := errors.New("extraction failed")
	agent := &claude{exec: &fakeExecutor{err: boom}}

	_, err := agent.Combine(context.Background(), &Request{
		Size:  &sizecheck.Result{Score: 9},
		Brand: &brandcheck.Result{Score: 9},
	})
	require.ErrorIs(t, err, boom)
}

func TestCombineRejectsNilResult(t *testing.T) {
	// An executor that yields no result must produce an error, not a panic
	// when the guardrail runs.
	agent := &claude{exec: &fakeExecutor{}}

	res, err := agent.Combine(context.Background(), &Request{
		Size:  &sizecheck.Result{Score: 9},
		Brand: &brandcheck.Result{Score: 9},
	})
	require.Error(t, err)
	require.Nil(t, res)
}

func TestCombineRejectsPartialInput(t *testing.T) {
	agent := &claude{exec: &fakeExecutor{result: &Result{EndScore: 5}}}

	_, err := agent.Combine(context.Background(), &Request{Size: &sizecheck.Result{Score: 9}})
	require.Error(t, err)
}

func ptr(f float64) *float64 { return &f }
