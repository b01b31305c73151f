/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas from Go result types so agent prompts
// can state the exact output shape the model must produce.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator wraps jsonschema.Reflector with the defaults we need for
// response-format schemas embedded in prompts.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator wired with project defaults.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect derives the JSON schema for the provided value using a default generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType allocates a zero value of T and reflects it to a schema.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// MarshalType renders the schema of T as indented JSON, suitable for direct
// inclusion in an instruction prompt.
func MarshalType[T any]() (string, error) {
	data, err := json.MarshalIndent(ReflectType[T](), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(data), nil
}

// MustMarshalType is MarshalType for package-level prompt variables; it panics
// on error.
func MustMarshalType[T any]() string {
	s, err := MarshalType[T]()
	if err != nil {
		panic(err)
	}
	return s
}
