//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawElement is a single element as produced by the LLM, after shape
// coercion. The union of shapes the model emits (list entries, keyed map
// entries, scalar site texts, "name" instead of "element") is collapsed here
// once at ingestion; downstream code only ever sees this record.
type RawElement struct {
	Element  string
	SiteText string
	Problem  string
	Solution string
	Actions  []string
}

// UnmarshalJSON accepts an element object and maps the "name" and "title"
// aliases onto Element. Actions may arrive as a list or a bare string.
func (e *RawElement) UnmarshalJSON(data []byte) error {
	var aux struct {
		Element  string          `json:"element"`
		Name     string          `json:"name"`
		Title    string          `json:"title"`
		SiteText string          `json:"siteText"`
		Problem  string          `json:"problem"`
		Solution string          `json:"solution"`
		Actions  json.RawMessage `json:"actions"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.Element = aux.Element
	if e.Element == "" {
		e.Element = aux.Name
	}
	if e.Element == "" {
		e.Element = aux.Title
	}
	e.SiteText = aux.SiteText
	e.Problem = aux.Problem
	e.Solution = aux.Solution

	e.Actions = nil
	if len(aux.Actions) > 0 {
		var list []string
		if err := json.Unmarshal(aux.Actions, &list); err == nil {
			e.Actions = list
		} else {
			var single string
			if err := json.Unmarshal(aux.Actions, &single); err == nil && single != "" {
				e.Actions = []string{single}
			}
		}
	}

	return nil
}

// RawElementList accepts the two element shapes the model produces:
// a JSON array of element objects, or a keyed object where each key is the
// element name and each value is either an element object or a bare string
// (treated as the site text).
type RawElementList []RawElement

// UnmarshalJSON implements the tagged-union parse. Keyed-object order is not
// preserved; element resolution downstream is name-driven, so order of the
// candidate pool does not matter.
func (l *RawElementList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if trimmed[0] == '[' {
		var list []RawElement
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}

	if trimmed[0] == '{' {
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return err
		}
		list := make([]RawElement, 0, len(keyed))
		for key, value := range keyed {
			elem, err := elementFromKeyed(key, value)
			if err != nil {
				return err
			}
			list = append(list, elem)
		}
		*l = list
		return nil
	}

	return fmt.Errorf("elements must be an array or an object, got %q", previewJSON(trimmed))
}

// elementFromKeyed converts one (key, value) pair from a keyed elements
// object into a RawElement. Scalar values become the site text.
func elementFromKeyed(key string, value json.RawMessage) (RawElement, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var elem RawElement
		if err := json.Unmarshal(trimmed, &elem); err != nil {
			return RawElement{}, fmt.Errorf("element %q: %w", key, err)
		}
		if elem.Element == "" {
			elem.Element = key
		}
		return elem, nil
	}

	var scalar string
	if err := json.Unmarshal(trimmed, &scalar); err != nil {
		// Numbers, booleans and the like carry no usable site text.
		return RawElement{Element: key}, nil
	}
	return RawElement{Element: key, SiteText: scalar}, nil
}

// RawCategory is one category entry of the untrusted LLM report array.
type RawCategory struct {
	Category string
	Elements RawElementList
}

// UnmarshalJSON maps the "name" alias onto Category.
func (c *RawCategory) UnmarshalJSON(data []byte) error {
	var aux struct {
		Category string         `json:"category"`
		Name     string         `json:"name"`
		Elements RawElementList `json:"elements"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Category = aux.Category
	if c.Category == "" {
		c.Category = aux.Name
	}
	c.Elements = aux.Elements
	return nil
}

func previewJSON(data []byte) string {
	const maxPreview = 24
	if len(data) > maxPreview {
		return string(data[:maxPreview]) + "..."
	}
	return string(data)
}
