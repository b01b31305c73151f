/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor provides a generic one-shot executor for
// Claude-backed scoring agents.
//
// Each Execute call renders the prompt template with the request's bindings,
// optionally attaches base64-encoded media blocks, issues a single
// Messages.New call, and extracts the typed response from the reply text via
// the result package. There is no conversation loop, no tool use, and no
// retry: the evaluation pipeline treats a failed model call as a failed
// evaluation.
//
// Basic usage:
//
//	client := anthropic.NewClient(option.WithAPIKey(apiKey))
//
//	exec, err := claudeexecutor.New[*Request, *Result](
//	    client,
//	    scoringPrompt,
//	    claudeexecutor.WithModel[*Request, *Result]("claude-sonnet-4-20250514"),
//	    claudeexecutor.WithMaxTokens[*Request, *Result](1024),
//	)
//	if err != nil {
//	    return nil, err
//	}
//
//	res, err := exec.Execute(ctx, req)
//
// Media-consuming agents pass attachments:
//
//	res, err := exec.Execute(ctx, req, claudeexecutor.Attachment{
//	    MediaType: "image/jpeg",
//	    Data:      imageBytes,
//	})
package claudeexecutor
