/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package aggregate

import (
	"brandlens.dev/brandlens/agents/promptbuilder"
	"brandlens.dev/brandlens/agents/schema"
)

// combinePrompt merges both partial judgments under a 20/80 weighting. Brand
// misalignment is structurally harder to fix than size, so it dominates. The
// guardrail is stated here and re-verified deterministically after extraction.
var combinePrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator tasked with aggregating multiple quality assessments into a single, final score.

You will receive evaluation results from two different agents.

**AGENT A - SIZE COMPLIANCE:**
{{size_result}}

**AGENT B - BRAND & CONTENT ALIGNMENT:**
{{brand_result}}

**YOUR TASK:**
Calculate a single final score from 0-10 that represents the overall quality of this content.

**SCORING GUIDELINES:**
- Agent A (Size Compliance): 20% weight
- Agent B (Brand Alignment): 80% weight (this is more critical for brand consistency)
- Consider that size issues can be fixed easily, but brand misalignment is a fundamental problem
- A score of 0-3 = Poor/Unusable
- A score of 4-6 = Needs significant improvement
- A score of 7-8 = Good with minor issues
- A score of 9-10 = Excellent/Ready to use

**IMPORTANT:**
- Be strict: Low scores in brand alignment should heavily impact the final score
- If Agent B scores below 3, the final score should not exceed 4, regardless of size compliance
- Round to 1 decimal place

Respond ONLY with valid JSON matching this schema:

{{output_schema}}
`).MustBindString("output_schema", schema.MustMarshalType[Result]())
