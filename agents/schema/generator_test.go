/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleResult struct {
	Score     float64 `json:"score" jsonschema:"required"`
	Reasoning string  `json:"reasoning" jsonschema:"required"`
	IsOptimal bool    `json:"isOptimal" jsonschema:"required"`
}

func TestReflectType(t *testing.T) {
	s := ReflectType[sampleResult]()
	require.NotNil(t, s)
	require.Equal(t, "object", s.Type)

	_, ok := s.Properties.Get("score")
	require.True(t, ok, "schema should describe the score property")
	_, ok = s.Properties.Get("isOptimal")
	require.True(t, ok, "schema should describe the isOptimal property")

	require.ElementsMatch(t, []string{"score", "reasoning", "isOptimal"}, s.Required)
}

func TestMarshalType(t *testing.T) {
	out, err := MarshalType[sampleResult]()
	require.NoError(t, err)
	require.Contains(t, out, `"score"`)
	require.Contains(t, out, `"reasoning"`)
	require.Contains(t, out, `"required"`)
}

func TestMustMarshalTypeDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		_ = MustMarshalType[sampleResult]()
	})
}
