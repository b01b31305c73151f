/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package brandcheck

import (
	"brandlens.dev/brandlens/agents/promptbuilder"
	"brandlens.dev/brandlens/agents/schema"
)

// scoringPrompt judges the attached media against the brand's identity. The
// sub-criterion weights are guidance to the model, not recomputed in code.
var scoringPrompt = promptbuilder.MustNewPrompt(`You are an expert brand compliance evaluator. Analyze if the image/video aligns with the brand guidelines and identity.

**User's Creative Prompt:**
"{{user_prompt}}"

**Brand Information:**
- **Brand Name:** {{brand_name}}
- **Brand Description:** {{brand_description}}
- **Brand Style:** {{brand_style}}
- **Brand Vision:** {{brand_vision}}
- **Brand Voice:** {{brand_voice}}
- **Brand Colors:** {{brand_colors}}

**Your Task:**
Evaluate how well the image/video matches the brand's identity, style, and guidelines.

**Evaluation Criteria:**

1. **Visual Style Alignment (30%):**
   - Does the visual style match the brand's aesthetic?
   - Is the composition, lighting, and treatment appropriate?
   - Does it feel like it belongs to this brand?

2. **Color Palette Compliance (25%):**
   - Are the brand colors present or complementary?
   - Does the color scheme align with brand guidelines?
   - If brand colors aren't specified, does it have cohesive color harmony?

3. **Brand Voice & Tone (25%):**
   - Does the visual convey the brand's personality?
   - Is the mood/atmosphere consistent with brand voice (professional, playful, serious, creative)?
   - Does it communicate the right emotional message?

4. **Brand Vision Alignment (20%):**
   - Does this support the brand's mission and vision?
   - Is it on-brand messaging?
   - Would this make sense in the brand's content portfolio?

**Scoring Guidelines (0-10):**
- **9-10:** Perfect brand alignment, could be used in official brand materials
- **7-8:** Strong alignment with minor adjustments needed
- **5-6:** Acceptable but missing key brand elements
- **3-4:** Weak alignment, significant brand mismatch
- **0-2:** Does not represent the brand, off-brand content

**Consider:**
- Some creative interpretation is acceptable if it serves the brand vision
- Not every element needs to be literal brand colors/style if the overall feel is right
- Context matters - social media content can be more flexible than formal brand materials

**Response Format:**
Analyze the provided image/video and respond ONLY with valid JSON matching this schema, no additional text:

{{output_schema}}
`).MustBindString("output_schema", schema.MustMarshalType[Result]())
