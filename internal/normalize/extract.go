// Package normalize reconciles untrusted LLM report output against the
// canonical category/element schema, producing a fully scored report in
// canonical shape regardless of what the model returned.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mbellini/landing-optimizer/internal/types"
)

// ParseError indicates the LLM text could not be parsed as JSON at all.
// This is the one fatal failure of normalization; everything else degrades
// into defaults.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unparsable AI response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unparsable AI response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// CleanFences strips markdown code fences from an LLM response. Models wrap
// JSON in ```json blocks even when instructed not to.
func CleanFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the opening fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSONSpan returns the first balanced [...] or {...} span in text.
// LLM responses routinely carry leading or trailing prose around the JSON.
func ExtractJSONSpan(text string) (string, error) {
	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return "", &ParseError{Message: "no JSON array or object found"}
	}

	open := text[start]
	var close byte = ']'
	if open == '{' {
		close = '}'
	}

	depth := 0
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
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", &ParseError{Message: "unbalanced JSON in response"}
}

// ParseRawReport extracts and parses the report array from raw LLM text.
// A top-level object is accepted when it wraps the array under "report" or is
// itself a single category. Valid JSON that does not fit the report shape is
// not a ParseError; it surfaces later as a regeneration signal.
func ParseRawReport(text string) ([]types.RawCategory, string, error) {
	span, err := ExtractJSONSpan(CleanFences(text))
	if err != nil {
		return nil, "", err
	}

	if !json.Valid([]byte(span)) {
		return nil, span, &ParseError{Message: "extracted span is not valid JSON"}
	}

	if strings.HasPrefix(span, "[") {
		var categories []types.RawCategory
		if err := json.Unmarshal([]byte(span), &categories); err != nil {
			return nil, span, fmt.Errorf("report array does not match expected shape: %w", err)
		}
		return categories, span, nil
	}

	var wrapper struct {
		Report []types.RawCategory `json:"report"`
	}
	if err := json.Unmarshal([]byte(span), &wrapper); err == nil && len(wrapper.Report) > 0 {
		return wrapper.Report, span, nil
	}

	var single types.RawCategory
	if err := json.Unmarshal([]byte(span), &single); err != nil {
		return nil, span, fmt.Errorf("report object does not match expected shape: %w", err)
	}
	return []types.RawCategory{single}, span, nil
}
