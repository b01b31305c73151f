/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"brandlens.dev/brandlens/store"
)

// readRows parses a CSV stream into header-keyed maps. Header names are
// trimmed since exported sheets tend to carry stray whitespace.
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, field := range record {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(field)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseBrands(r io.Reader) ([]store.Brand, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	brands := make([]store.Brand, 0, len(rows))
	for i, row := range rows {
		b := store.Brand{
			BrandID:     row["brandId"],
			Name:        row["brandName"],
			Description: row["brandDescription"],
			Style:       row["style"],
			Vision:      row["brandVision"],
			Voice:       row["brandVoice"],
			Colors:      row["colors"],
		}
		if b.BrandID == "" || b.Name == "" {
			return nil, fmt.Errorf("row %d: brandId and brandName are required", i+2)
		}
		brands = append(brands, b)
	}
	return brands, nil
}

func parseAssets(r io.Reader, now func() time.Time) ([]store.Asset, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	assets := make([]store.Asset, 0, len(rows))
	for i, row := range rows {
		a := store.Asset{
			MediaPath: row["imagePath"],
			Prompt:    row["prompt"],
			Model:     row["LLM_Model"],
			Channel:   row["channel"],
			UserID:    row["userId"],
			BrandID:   row["brandId"],
			Timestamp: parseTimestamp(row, now),
		}
		if a.MediaPath == "" || a.UserID == "" || a.BrandID == "" {
			return nil, fmt.Errorf("row %d: imagePath, userId and brandId are required", i+2)
		}
		a.Width = parseDim(row["width"])
		a.Height = parseDim(row["height"])
		assets = append(assets, a)
	}
	return assets, nil
}

// parseTimestamp accepts either a timeStamp or timestamp column and falls
// back to the current time when the value is missing or unparseable.
func parseTimestamp(row map[string]string, now func() time.Time) time.Time {
	raw := row["timeStamp"]
	if raw == "" {
		raw = row["timestamp"]
	}
	if raw == "" {
		return now()
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006",
	} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return now()
}

func parseDim(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
