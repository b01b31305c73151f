/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result recovers typed values from free-form AI model responses.

Models are instructed to answer with bare JSON, but in practice the payload
often arrives wrapped in prose, inside a markdown code fence, or with a stray
trailing comma. Extract runs an ordered chain of recovery strategies and
returns the first value that parses, or an *ExtractionError carrying the raw
text when nothing does:

	type Verdict struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}

	v, err := result.Extract[Verdict](responseText)
	if err != nil {
		var extErr *result.ExtractionError
		if errors.As(err, &extErr) {
			log.Printf("raw response: %s", extErr.Raw)
		}
		return err
	}

The chain never substitutes a default value: a response with no parseable
content is always surfaced as an error, not as a zero struct.

All functions are safe for concurrent use; they operate on immutable inputs
and keep no state.
*/
package result
