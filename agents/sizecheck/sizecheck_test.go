/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package sizecheck

import (
	"context"
	"errors"
	"testing"

	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"github.com/stretchr/testify/require"
)

func TestRequestBind(t *testing.T) {
	req := &Request{
		Width:   1080,
		Height:  1350,
		Format:  "jpeg",
		Prompt:  "portrait shot of a sneaker on a pedestal",
		Channel: "Instagram",
	}

	bound, err := req.Bind(scoringPrompt)
	require.NoError(t, err)

	out, err := bound.Build()
	require.NoError(t, err)

	require.Contains(t, out, "Width: 1080px")
	require.Contains(t, out, "Height: 1350px")
	require.Contains(t, out, "Aspect Ratio: 0.80")
	require.Contains(t, out, "Format: jpeg")
	require.Contains(t, out, `"portrait shot of a sneaker on a pedestal"`)
	require.Contains(t, out, "Instagram")

	// The platform size table and the output schema travel with every prompt.
	require.Contains(t, out, "1080x1920 (9:16)")
	require.Contains(t, out, `"isOptimal"`)
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{{
		name: "valid",
		req:  Request{Width: 1080, Height: 1080, Format: "png", Channel: "Instagram"},
	}, {
		name:    "zero width",
		req:     Request{Width: 0, Height: 1080, Channel: "Instagram"},
		wantErr: true,
	}, {
		name:    "negative height",
		req:     Request{Width: 1080, Height: -1, Channel: "Instagram"},
		wantErr: true,
	}, {
		name:    "missing channel",
		req:     Request{Width: 1080, Height: 1080},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

type fakeExecutor struct {
	result *Result
	err    error
	gotReq *Request
}

func (f *fakeExecutor) Execute(_ context.Context, req *Request, _ ...claudeexecutor.Attachment) (*Result, error) {
	f.gotReq = req
	return f.result, f.err
}

func TestCheck(t *testing.T) {
	want := &Result{Score: 9, Reasoning: "close match", IsOptimal: false}
	fake := &fakeExecutor{result: want}
	agent := &claude{exec: fake}

	got, err := agent.Check(context.Background(), &Request{
		Width: 1080, Height: 1080, Format: "jpeg", Channel: "Instagram",
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.NotNil(t, fake.gotReq)
}

func TestCheckRejectsInvalidRequest(t *testing.T) {
	fake := &fakeExecutor{result: &Result{}}
	agent := &claude{exec: fake}

	_, err := agent.Check(context.Background(), &Request{Width: 0, Height: 0, Channel: "Instagram"})
	require.Error(t, err)
	require.Nil(t, fake.gotReq, "invalid requests must not reach the model")
}

func TestCheckRejectsNilResult(t *testing.T) {
	agent := &claude{exec: &fakeExecutor{}}

	res, err := agent.Check(context.Background(), &Request{
		Width: 1080, Height: 1080, Channel: "Instagram",
	})
	require.Error(t, err)
	require.Nil(t, res)
}

func TestCheckPropagatesModelFailure(t *testing.T) {
	boom := errors.New("model unavailable")
	agent := &claude{exec: &fakeExecutor{err: boom}}

	_, err := agent.Check(context.Background(), &Request{
		Width: 1080, Height: 1080, Channel: "Instagram",
	})
	require.ErrorIs(t, err, boom)
}
