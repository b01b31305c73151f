/*
Copyright 2025 BrandLens Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ExtractionError is returned when no strategy could recover structured data
// from a model response. Raw carries the original text for diagnostics.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to extract valid JSON from model response: %v", e.Err)
	}
	return "unable to extract valid JSON from model response"
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extract recovers a value of type T from free-form model text. Model output is
// not contractually JSON: it may be bare, wrapped in prose, wrapped in markdown
// code fences, or carry a trailing comma that would abort a naive parse. The
// strategies below run in order against the trimmed text and the first one that
// parses wins:
//
//  1. direct parse of the whole text
//  2. the first ```json fenced block, with trailing commas stripped
//  3. the first generic ``` fenced block, with trailing commas stripped
//  4. the first balanced {...} or [...] slice, with trailing commas stripped
//  5. the whole text with trailing commas stripped
//
// A response that parses to JSON null is not a result; it fails the strategy
// like any other parse error. If the text is empty, or every strategy fails,
// Extract returns an *ExtractionError carrying the original text.
func Extract[T any](responseText string) (T, error) {
	var zero T

	text := strings.TrimSpace(responseText)
	if text == "" {
		return zero, &ExtractionError{Raw: responseText, Err: fmt.Errorf("no text content in response")}
	}

	// 1. The whole response is bare JSON.
	if v, err := tryParse[T](text); err == nil {
		return v, nil
	}

	// 2. A fenced block explicitly labeled as JSON.
	if block, ok := extractFence(text, true); ok {
		if v, err := tryParse[T](stripTrailingCommas(block)); err == nil {
			return v, nil
		}
	}

	// 3. Any fenced block.
	if block, ok := extractFence(text, false); ok {
		if v, err := tryParse[T](stripTrailingCommas(block)); err == nil {
			return v, nil
		}
	}

	// 4. The first balanced object or array buried in prose.
	if candidate, ok := findBalanced(text); ok {
		if v, err := tryParse[T](stripTrailingCommas(candidate)); err == nil {
			return v, nil
		}
	}

	// 5. Last resort: repair the entire text and parse it directly.
	v, err := tryParse[T](stripTrailingCommas(text))
	if err == nil {
		return v, nil
	}

	return zero, &ExtractionError{Raw: responseText, Err: err}
}

func tryParse[T any](s string) (T, error) {
	var v T
	s = strings.TrimSpace(s)
	if s == "null" {
		return v, fmt.Errorf("parsed JSON is null")
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}
	// A literal null unmarshals cleanly into a pointer, map or slice without
	// producing a value. Callers expect a populated result, so treat it as a
	// parse failure and let the remaining strategies (and ultimately the
	// extraction error) take over.
	if isNilValue(v) {
		var zero T
		return zero, fmt.Errorf("parsed JSON is null")
	}
	return v, nil
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}

// extractFence returns the contents of the first markdown code fence. When
// labeled is true only ```json fences match; otherwise any fence matches.
// A fence without a closing marker yields its remaining content.
func extractFence(text string, labeled bool) (string, bool) {
	marker := "```"
	if labeled {
		marker = "```json"
	}

	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}
	body := text[start+len(marker):]

	// Skip a language tag on the opening line for unlabeled fences.
	if !labeled {
		if nl := strings.IndexByte(body, '\n'); nl != -1 && !strings.ContainsAny(body[:nl], "{[") {
			body = body[nl+1:]
		}
	}

	if end := strings.Index(body, "```"); end != -1 {
		body = body[:end]
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}
	return body, true
}

// findBalanced scans for the first { or [ and walks forward tracking a nesting
// stack of brace/bracket pairs. When a close empties the stack the exact slice
// is returned. Mismatched nesting aborts the scan entirely.
func findBalanced(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return "", false
	}

	var stack []byte
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return "", false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// stripTrailingCommas removes commas that are followed only by whitespace and a
// closing brace or bracket. String literals are left untouched.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue // drop the comma
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
