/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"brandlens.dev/brandlens/agents/metrics"
	"brandlens.dev/brandlens/agents/promptbuilder"
	"brandlens.dev/brandlens/agents/result"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// Attachment is a binary media payload sent alongside the prompt text.
// The executor base64-encodes the data into an image content block.
type Attachment struct {
	// MediaType is the normalized MIME type, e.g. "image/jpeg".
	MediaType string
	// Data is the raw media bytes.
	Data []byte
}

// Interface is the public interface for one-shot Claude agent execution.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute binds the request into the prompt, issues exactly one model
	// call, and extracts the typed response from the reply text. There is no
	// retry: a failed call surfaces as a pipeline failure.
	Execute(ctx context.Context, request Request, attachments ...Attachment) (Response, error)
}

// executor provides the private implementation.
type executor[Request promptbuilder.Bindable, Response any] struct {
	client       anthropic.Client
	modelName    string
	system       *promptbuilder.Prompt
	prompt       *promptbuilder.Prompt
	maxTokens    int64
	temperature  float64
	genaiMetrics *metrics.GenAI
}

// New creates an executor with minimal required configuration.
func New[Request promptbuilder.Bindable, Response any](
	client anthropic.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		modelName:    "claude-sonnet-4-20250514",
		prompt:       prompt,
		maxTokens:    1024,
		temperature:  0.1, // low temperature for scoring consistency
		genaiMetrics: metrics.NewGenAI("brandlens.agents"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Execute implements Interface.
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request, attachments ...Attachment) (Response, error) {
	var response Response
	log := clog.FromContext(ctx)

	boundPrompt, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}

	prompt, err := boundPrompt.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	// Media blocks precede the text block so the model sees the asset before
	// the instructions that reference it.
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(attachments)+1)
	for _, a := range attachments {
		if len(a.Data) == 0 {
			return response, errors.New("attachment has no data")
		}
		blocks = append(blocks, anthropic.NewImageBlockBase64(a.MediaType, base64.StdEncoding.EncodeToString(a.Data)))
	}
	blocks = append(blocks, anthropic.NewTextBlock(prompt))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: blocks,
		}},
	}
	params.Temperature = anthropic.Float(e.temperature)

	if e.system != nil {
		systemPrompt, err := e.system.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	log.With("model", e.modelName).
		With("prompt_length", len(prompt)).
		With("attachments", len(attachments)).
		Info("Invoking Claude")

	message, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return response, fmt.Errorf("invoking model: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	// Join every text segment; the model may interleave prose around the JSON
	// payload and the extractor handles that.
	var segments []string
	for _, content := range message.Content {
		if content.Type == "text" {
			segments = append(segments, content.Text)
		}
	}
	text := strings.TrimSpace(strings.Join(segments, "\n"))

	resp, err := result.Extract[Response](text)
	if err != nil {
		log.With("response", text).
			With("error", err).
			Error("Failed to parse Claude response")
		return response, err
	}

	return resp, nil
}
