/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package sizecheck

import (
	"context"
	"errors"
	"fmt"

	"brandlens.dev/brandlens/agents/executor/claudeexecutor"
	"github.com/anthropics/anthropic-sdk-go"
)

// claude implements Interface using the one-shot Claude executor.
type claude struct {
	exec claudeexecutor.Interface[*Request, *Result]
}

// New creates a Claude-backed size compliance agent.
func New(client anthropic.Client, opts ...claudeexecutor.Option[*Request, *Result]) (Interface, error) {
	exec, err := claudeexecutor.New[*Request, *Result](client, scoringPrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating size compliance executor: %w", err)
	}
	return &claude{exec: exec}, nil
}

// Check implements Interface.
func (c *claude) Check(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid size compliance request: %w", err)
	}
	res, err := c.exec.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("model produced no size compliance result")
	}
	return res, nil
}
