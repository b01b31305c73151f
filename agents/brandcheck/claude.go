/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package brandcheck

import (
	"context"
	"errors"
	"fmt"

	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"brandlens.dev/brandlens/media"
	"github.com/anthropics/anthropic-sdk-go"
)

// claude implements Interface using the one-shot Claude executor.
type claude struct {
	exec claudeexecutor.Interface[*Request, *Result]
}

// New creates a Claude-backed brand compliance agent.
func New(client anthropic.Client, opts ...claudeexecutor.Option[*Request, *Result]) (Interface, error) {
	exec, err := claudeexecutor.New[*Request, *Result](client, scoringPrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating brand compliance executor: %w", err)
	}
	return &claude{exec: exec}, nil
}

// Check implements Interface.
func (c *claude) Check(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid brand compliance request: %w", err)
	}

	res, err := c.exec.Execute(ctx, req, claudeexecutor.Attachment{
		MediaType: media.NormalizeMediaType(req.Media.ContentType),
		Data:      req.Media.Data,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("model produced no brand compliance result")
	}
	return res, nil
}
