package normalize

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mbellini/landing-optimizer/internal/schema"
	"github.com/mbellini/landing-optimizer/internal/types"
)

// rawReportSchema is the structural contract for the LLM report array.
// Semantic checks (category count, canonical names) happen in ValidateShape;
// this pre-check only rejects documents that are the wrong kind of JSON
// entirely, such as an array of strings.
const rawReportSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"category": {"type": "string"},
			"name": {"type": "string"},
			"elements": {"type": ["array", "object"]}
		},
		"anyOf": [
			{"required": ["category"]},
			{"required": ["name"]}
		]
	}
}`

// CheckStructure validates a raw JSON span against the structural report
// schema. Failures are regeneration signals, never fatal.
func CheckStructure(jsonSpan string) error {
	if !strings.HasPrefix(strings.TrimSpace(jsonSpan), "[") {
		// Object wrappers are unwrapped by ParseRawReport before this check
		// matters; a bare object is handled there too.
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(rawReportSchema),
		gojsonschema.NewStringLoader(jsonSpan),
	)
	if err != nil {
		return fmt.Errorf("structural check failed to run: %w", err)
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("report structure invalid: %s", strings.Join(messages, "; "))
	}

	return nil
}

// Validation is the outcome of checking raw categories against the canonical
// schema. NeedsRegeneration signals the caller that the upstream generation
// step should be retried; after the retry budget is exhausted the same raw
// data is repaired by per-element defaulting instead.
type Validation struct {
	NeedsRegeneration bool
	Errors            []string
}

// ValidateShape checks that the raw report has the canonical category count
// and, at each index, the canonical category name and element names.
func ValidateShape(raw []types.RawCategory, fa schema.FocusArea) Validation {
	var v Validation

	if len(raw) != len(fa.Categories) {
		v.NeedsRegeneration = true
		v.Errors = append(v.Errors, fmt.Sprintf(
			"expected %d categories, got %d", len(fa.Categories), len(raw)))
		return v
	}

	for i, canonical := range fa.Categories {
		got := strings.TrimSpace(raw[i].Category)
		if !strings.EqualFold(got, canonical.Name) {
			v.NeedsRegeneration = true
			v.Errors = append(v.Errors, fmt.Sprintf(
				"category %d: expected %q, got %q", i, canonical.Name, got))
			continue
		}

		provided := make(map[string]bool, len(raw[i].Elements))
		for _, el := range raw[i].Elements {
			provided[strings.ToLower(strings.TrimSpace(el.Element))] = true
		}
		for _, name := range canonical.Elements {
			if !provided[strings.ToLower(name)] {
				v.NeedsRegeneration = true
				v.Errors = append(v.Errors, fmt.Sprintf(
					"category %q: missing element %q", canonical.Name, name))
			}
		}
	}

	return v
}
