/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type verdict struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
	IsOptimal bool    `json:"isOptimal"`
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  verdict
	}{{
		name:  "bare json",
		input: `{"score": 7, "reasoning": "ok", "isOptimal": false}`,
		want:  verdict{Score: 7, Reasoning: "ok"},
	}, {
		name: "bare json with surrounding whitespace",
		input: `
    {"score": 9.5, "reasoning": "near perfect", "isOptimal": true}
    `,
		want: verdict{Score: 9.5, Reasoning: "near perfect", IsOptimal: true},
	}, {
		name: "labeled fence",
		input: "Here is the result:\n```json\n" +
			`{"score": 7, "reasoning": "ok", "isOptimal": false}` + "\n```",
		want: verdict{Score: 7, Reasoning: "ok"},
	}, {
		name: "labeled fence with trailing comma",
		input: "Here is the result:\n```json\n" +
			`{"score": 7, "reasoning": "ok", "isOptimal": false,}` + "\n```",
		want: verdict{Score: 7, Reasoning: "ok"},
	}, {
		name: "generic fence",
		input: "```\n" +
			`{"score": 4, "reasoning": "wrong ratio", "isOptimal": false}` + "\n```",
		want: verdict{Score: 4, Reasoning: "wrong ratio"},
	}, {
		name: "generic fence with language tag",
		input: "```javascript\n" +
			`{"score": 4, "reasoning": "wrong ratio", "isOptimal": false}` + "\n```",
		want: verdict{Score: 4, Reasoning: "wrong ratio"},
	}, {
		name: "prose wrapped, no fences",
		input: `After careful analysis I arrived at
{"score": 8, "reasoning": "close match", "isOptimal": false}
which reflects the 10% tolerance band.`,
		want: verdict{Score: 8, Reasoning: "close match"},
	}, {
		name:  "trailing comma without fences",
		input: `{"score": 3, "reasoning": "poor", "isOptimal": false,}`,
		want:  verdict{Score: 3, Reasoning: "poor"},
	}, {
		name: "nested trailing commas",
		input: "```json\n" + `{
  "score": 6,
  "reasoning": "acceptable",
  "isOptimal": false,
}` + "\n```",
		want: verdict{Score: 6, Reasoning: "acceptable"},
	}, {
		name:  "braces inside string literals",
		input: `The verdict: {"score": 5, "reasoning": "format {weird}, but usable", "isOptimal": false}`,
		want:  verdict{Score: 5, Reasoning: "format {weird}, but usable"},
	}, {
		name:  "unclosed fence",
		input: "```json\n" + `{"score": 2, "reasoning": "bad", "isOptimal": false}`,
		want:  verdict{Score: 2, Reasoning: "bad"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract[verdict](tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractMatchesDirectParse(t *testing.T) {
	// Bare JSON must extract to exactly what a direct parse yields.
	input := `{"score": 7.5, "reasoning": "solid", "isOptimal": true}`
	got, err := Extract[verdict](input)
	require.NoError(t, err)
	require.Equal(t, verdict{Score: 7.5, Reasoning: "solid", IsOptimal: true}, got)
}

func TestExtractFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{{
		name:  "empty input",
		input: "",
	}, {
		name:  "whitespace only",
		input: "  \n\t  ",
	}, {
		name:  "plain prose",
		input: "I could not produce a structured answer.",
	}, {
		name:  "mismatched nesting",
		input: `prose {"score": [1, 2} prose`,
	}, {
		name:  "literal null",
		input: "null",
	}, {
		name:  "null in labeled fence",
		input: "```json\nnull\n```",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract[verdict](tt.input)
			require.Error(t, err)

			var extErr *ExtractionError
			require.True(t, errors.As(err, &extErr), "expected *ExtractionError, got %T", err)
			require.Equal(t, tt.input, extErr.Raw)
		})
	}
}

func TestExtractNullNeverYieldsNilPointer(t *testing.T) {
	// A null reply must surface as an extraction failure, not as a nil
	// pointer with a nil error that callers would dereference.
	got, err := Extract[*verdict]("null")
	require.Error(t, err)
	require.Nil(t, got)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr), "expected *ExtractionError, got %T", err)
	require.Equal(t, "null", extErr.Raw)
}

func TestExtractNeverDefaults(t *testing.T) {
	// A failed extraction must not come back as a usable zero struct.
	got, err := Extract[verdict]("no structured content here")
	require.Error(t, err)
	require.Equal(t, verdict{}, got, "failed extraction should return the zero value alongside the error")
}

func TestStripTrailingCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{{
		name:  "object",
		input: `{"a": 1,}`,
		want:  `{"a": 1}`,
	}, {
		name:  "array",
		input: `[1, 2, 3,]`,
		want:  `[1, 2, 3]`,
	}, {
		name:  "comma then newline",
		input: "{\"a\": 1,\n}",
		want:  "{\"a\": 1\n}",
	}, {
		name:  "comma inside string survives",
		input: `{"a": "x,}", "b": 2,}`,
		want:  `{"a": "x,}", "b": 2}`,
	}, {
		name:  "separating commas survive",
		input: `{"a": 1, "b": 2}`,
		want:  `{"a": 1, "b": 2}`,
	}, {
		name:  "escaped quote in string",
		input: `{"a": "he said \",}\"",}`,
		want:  `{"a": "he said \",}\""}`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stripTrailingCommas(tt.input))
		})
	}
}

func TestFindBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{{
		name:  "object in prose",
		input: `before {"a": {"b": 1}} after`,
		want:  `{"a": {"b": 1}}`,
		ok:    true,
	}, {
		name:  "array first",
		input: `scores: [1, 2, 3] done`,
		want:  `[1, 2, 3]`,
		ok:    true,
	}, {
		name:  "mismatched nesting aborts",
		input: `{"a": [1}`,
		ok:    false,
	}, {
		name:  "no opener",
		input: "plain text",
		ok:    false,
	}, {
		name:  "never closes",
		input: `{"a": 1`,
		ok:    false,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findBalanced(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
