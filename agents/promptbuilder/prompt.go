/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
	"maps"
)

// stringLiteral only accepts literal strings, keeping user input out of
// template text. Dynamic values go through the Bind* methods instead.
type stringLiteral string

// Prompt is an immutable template with {{name}} placeholders. Binding a value
// returns a new Prompt; Build fails while any placeholder remains unbound.
type Prompt struct {
	template string
	bindings map[string]binding
}

// NewPrompt parses a template literal and collects its placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)

	tmpl, err := walkTemplate(string(template), func(name string) (string, error) {
		if _, exists := bindings[name]; !exists {
			bindings[name] = &unboundBinding{name: name}
		}
		// Keep the placeholder intact during parsing.
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}

	return &Prompt{
		template: tmpl,
		bindings: bindings,
	}, nil
}

// GetBindings returns the names of all placeholders found in the template.
func (p *Prompt) GetBindings() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindString binds a string value to a placeholder and returns a new Prompt.
func (p *Prompt) BindString(name, value string) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	next := p.clone()
	next.bindings[name] = &literalBinding{val: value}
	return next, nil
}

// BindJSON binds structured data to a placeholder, marshaled as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	next := p.clone()
	next.bindings[name] = &jsonBinding{data: data}
	return next, nil
}

// Build renders the final prompt, failing if any placeholder is unbound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		val, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = val
	}

	return walkTemplate(p.template, func(name string) (string, error) {
		if val, exists := values[name]; exists {
			return val, nil
		}
		// Unreachable: NewPrompt and Build tokenize identically.
		return "", fmt.Errorf("internal error: binding %q not found", name)
	})
}

func (p *Prompt) clone() *Prompt {
	return &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
}

// binding is a value that will be substituted into the template.
type binding interface {
	value() (string, error)
}

type unboundBinding struct {
	name string
}

func (u *unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

type literalBinding struct {
	val string
}

func (l *literalBinding) value() (string, error) {
	return l.val, nil
}

type jsonBinding struct {
	data any
}

func (j *jsonBinding) value() (string, error) {
	bytes, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(bytes), nil
}

func existsAndUnbound(bindings map[string]binding, name string) error {
	b, exists := bindings[name]
	if !exists {
		return fmt.Errorf("binding %q not found in template", name)
	}
	if _, isUnbound := b.(*unboundBinding); !isUnbound {
		return fmt.Errorf("binding %q already bound", name)
	}
	return nil
}
