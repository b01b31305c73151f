/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package media fetches creative assets and resolves their intrinsic
// metadata. It is the external collaborator the evaluation pipeline relies on
// for raw bytes, content types, and pixel dimensions.
package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBytes bounds how much media we are willing to pull into memory.
const maxBytes = 64 << 20

// Blob is fetched media: raw bytes plus a best-effort content type.
type Blob struct {
	Data        []byte
	ContentType string
}

// Fetcher retrieves media bytes from a locatable reference.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Blob, error)
}

// HTTPFetcher fetches media over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with a bounded client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch implements Fetcher. Fetch failures propagate as evaluation failures;
// there is no retry.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building media request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching media %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching media %q: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading media %q: %w", url, err)
	}
	if len(data) > maxBytes {
		return nil, fmt.Errorf("media %q exceeds %d byte limit", url, maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media %q is empty", url)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	return &Blob{Data: data, ContentType: ct}, nil
}

// NormalizeMediaType maps a raw content type onto the media types the model
// API accepts, falling back to JPEG when the type is undetectable.
func NormalizeMediaType(contentType string) string {
	t := strings.ToLower(contentType)

	switch {
	case strings.Contains(t, "jpeg"), strings.Contains(t, "jpg"):
		return "image/jpeg"
	case strings.Contains(t, "png"):
		return "image/png"
	case strings.Contains(t, "gif"):
		return "image/gif"
	case strings.Contains(t, "webp"):
		return "image/webp"
	case strings.Contains(t, "mp4"):
		return "video/mp4"
	case strings.Contains(t, "mov"), strings.Contains(t, "quicktime"):
		return "video/quicktime"
	case strings.Contains(t, "avi"), strings.Contains(t, "msvideo"):
		return "video/x-msvideo"
	case strings.Contains(t, "webm"):
		return "video/webm"
	}

	return "image/jpeg"
}

// FormatName reduces a content type to the short format name the image
// decoders report, so seeded and probed assets describe their format the
// same way.
func FormatName(contentType string) string {
	mt := NormalizeMediaType(contentType)
	switch mt {
	case "video/quicktime":
		return "mov"
	case "video/x-msvideo":
		return "avi"
	}
	return mt[strings.IndexByte(mt, '/')+1:]
}
