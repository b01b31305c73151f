/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package media

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders for DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Metadata is the intrinsic pixel geometry of an image.
type Metadata struct {
	Width  int
	Height int
	Format string
}

// Probe reads the intrinsic dimensions of image media without decoding the
// full pixel data. Video formats cannot be probed here; their dimensions must
// come from the asset record.
func Probe(blob *Blob) (*Metadata, error) {
	if blob == nil || len(blob.Data) == 0 {
		return nil, fmt.Errorf("no media bytes to probe")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(blob.Data))
	if err != nil {
		return nil, fmt.Errorf("probing media dimensions: %w", err)
	}

	return &Metadata{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
