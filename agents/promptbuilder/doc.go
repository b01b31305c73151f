/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder assembles model prompts from templates with {{name}}
placeholders.

Prompts are immutable: each Bind* call returns a new Prompt, and Build refuses
to render while any placeholder is unbound, so a half-assembled prompt can
never reach the model. Request types implement Bindable so executors can bind
request data without knowing the template's shape:

	var scoringPrompt = promptbuilder.MustNewPrompt(`
	Evaluate the asset for {{channel}}.

	{{details}}
	`)

	func (r *Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
		p, err := p.BindString("channel", r.Channel)
		if err != nil {
			return nil, err
		}
		return p.BindJSON("details", r.Details)
	}
*/
package promptbuilder
