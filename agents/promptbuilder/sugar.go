/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must panics if err is non-nil. Intended for package-level prompt variables
// whose templates are known valid at compile time:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Hello {{name}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt is syntactic sugar for Must(NewPrompt(...)).
func MustNewPrompt(template stringLiteral) *Prompt {
	return Must(NewPrompt(template))
}

// MustBindString is syntactic sugar for Must(p.BindString(...)).
func (p *Prompt) MustBindString(name, value string) *Prompt {
	return Must(p.BindString(name, value))
}

// MustBindJSON is syntactic sugar for Must(p.BindJSON(...)).
func (p *Prompt) MustBindJSON(name string, data any) *Prompt {
	return Must(p.BindJSON(name, data))
}
