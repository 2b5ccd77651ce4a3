// Package schema holds the canonical per-focus-area category/element schema
// that every AI-generated report is reconciled against, plus the key
// normalizers for focus areas, industries and goals.
//
// The schema is fixed and order-significant: output reports always carry
// exactly these categories and elements, in this order.
package schema

import (
	"strings"
	"unicode"
)

// Focus area keys.
const (
	FocusCopywriting = "copywriting"
	FocusUXUI        = "uxui"
	FocusMobile      = "mobile"
	FocusCTA         = "cta"
	FocusSEO         = "seo"
)

// DefaultFocusArea is used when a requested focus area cannot be recognized
// after normalization.
const DefaultFocusArea = FocusCopywriting

// Industry keys.
const (
	IndustryEcommerce = "ecommerce"
	IndustrySaaS      = "saas"
	IndustryServices  = "services"
	IndustryLocal     = "local"
	IndustryOther     = "other"
)

// DefaultGoalKey is used when a goal label cannot be recognized.
const DefaultGoalKey = "leadGeneration"

// Category is one canonical category: a name and its ordered element names.
type Category struct {
	Name     string
	Elements []string
}

// FocusArea is the canonical schema for one focus area: its ordered
// categories and a hint string embedded into the generation prompt.
type FocusArea struct {
	Key        string
	Categories []Category
	FocusHint  string
}

var focusAreas = map[string]FocusArea{
	FocusCopywriting: {
		Key:       FocusCopywriting,
		FocusHint: "Evaluate the persuasive quality, clarity and structure of the page copy.",
		Categories: []Category{
			{Name: "Headline & Value Proposition", Elements: []string{
				"Main headline", "Subheadline", "Value proposition", "Supporting copy",
			}},
			{Name: "Persuasion & Credibility", Elements: []string{
				"Benefit statements", "Social proof copy", "Urgency triggers",
			}},
			{Name: "Readability & Structure", Elements: []string{
				"Paragraph structure", "Scannability", "Tone of voice", "Jargon level",
			}},
			{Name: "Call to Action Copy", Elements: []string{
				"Primary CTA text", "Secondary CTA text", "Microcopy",
			}},
		},
	},
	FocusUXUI: {
		Key:       FocusUXUI,
		FocusHint: "Evaluate visual hierarchy, navigation flow, trust signals and form interaction.",
		Categories: []Category{
			{Name: "Visual Hierarchy", Elements: []string{
				"Above the fold layout", "Content grouping", "Whitespace balance",
			}},
			{Name: "Navigation & Flow", Elements: []string{
				"Menu structure", "Scroll depth cues", "Internal links",
			}},
			{Name: "Trust & Credibility", Elements: []string{
				"Testimonials display", "Trust badges", "Brand consistency",
			}},
			{Name: "Forms & Interaction", Elements: []string{
				"Form length", "Field labels", "Error feedback",
			}},
		},
	},
	FocusMobile: {
		Key:       FocusMobile,
		FocusHint: "Evaluate how the page renders and converts on small touch screens.",
		Categories: []Category{
			{Name: "Mobile Layout", Elements: []string{
				"Viewport configuration", "Tap target size", "Font scaling",
			}},
			{Name: "Mobile Performance", Elements: []string{
				"Image optimization", "Script weight", "Render blocking",
			}},
			{Name: "Mobile Navigation", Elements: []string{
				"Hamburger menu", "Sticky CTA", "Thumb reachability",
			}},
			{Name: "Mobile Content", Elements: []string{
				"Content prioritization", "Form usability", "Popup behavior",
			}},
		},
	},
	FocusCTA: {
		Key:       FocusCTA,
		FocusHint: "Evaluate the visibility, wording and conversion path of the calls to action.",
		Categories: []Category{
			{Name: "CTA Visibility", Elements: []string{
				"Primary CTA placement", "CTA contrast", "CTA repetition",
			}},
			{Name: "CTA Copy", Elements: []string{
				"Action verb strength", "Value clarity", "Friction words",
			}},
			{Name: "CTA Design", Elements: []string{
				"Button size", "Button shape", "Hover states",
			}},
			{Name: "Conversion Path", Elements: []string{
				"Steps to convert", "Distraction removal", "Exit points",
			}},
		},
	},
	FocusSEO: {
		Key:       FocusSEO,
		FocusHint: "Evaluate on-page search signals: meta tags, heading structure, technical health and links.",
		Categories: []Category{
			{Name: "Meta Signals", Elements: []string{
				"Title tag", "Meta description", "Canonical tag",
			}},
			{Name: "Content Structure", Elements: []string{
				"H1 heading", "Heading hierarchy", "Keyword usage",
			}},
			{Name: "Technical Health", Elements: []string{
				"Page speed signals", "Image alt text", "Structured data",
			}},
			{Name: "Link Profile", Elements: []string{
				"Internal linking", "Anchor text", "Outbound links",
			}},
		},
	},
}

// focusSynonyms maps normalized aliases onto canonical focus area keys.
var focusSynonyms = map[string]string{
	"ux":           FocusUXUI,
	"ui":           FocusUXUI,
	"uxui":         FocusUXUI,
	"design":       FocusUXUI,
	"copy":         FocusCopywriting,
	"copywriting":  FocusCopywriting,
	"content":      FocusCopywriting,
	"mobile":       FocusMobile,
	"responsive":   FocusMobile,
	"cta":          FocusCTA,
	"calltoaction": FocusCTA,
	"conversion":   FocusCTA,
	"seo":          FocusSEO,
	"search":       FocusSEO,
}

// industries is the fixed set of recognized industry keys.
var industries = map[string]bool{
	IndustryEcommerce: true,
	IndustrySaaS:      true,
	IndustryServices:  true,
	IndustryLocal:     true,
	IndustryOther:     true,
}

// industrySynonyms maps normalized aliases onto canonical industry keys.
var industrySynonyms = map[string]string{
	"ecom":          IndustryEcommerce,
	"shop":          IndustryEcommerce,
	"store":         IndustryEcommerce,
	"software":      IndustrySaaS,
	"b2b":           IndustrySaaS,
	"agency":        IndustryServices,
	"consulting":    IndustryServices,
	"localbusiness": IndustryLocal,
	"restaurant":    IndustryLocal,
}

// goalKeys maps normalized goal labels onto fixed internal goal keys.
var goalKeys = map[string]string{
	"leadgeneration": "leadGeneration",
	"leads":          "leadGeneration",
	"sales":          "sales",
	"increasesales":  "sales",
	"signups":        "signups",
	"registrations":  "signups",
	"newsletter":     "signups",
	"bookings":       "bookings",
	"appointments":   "bookings",
	"downloads":      "downloads",
	"engagement":     "engagement",
}

// normalizeKey case-folds and strips every non-alphanumeric rune.
func normalizeKey(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizeFocusArea resolves a user-supplied focus area label to a canonical
// key. Unrecognized labels fall back to DefaultFocusArea; the second return
// reports whether the label was recognized.
func NormalizeFocusArea(label string) (string, bool) {
	key := normalizeKey(label)
	if _, ok := focusAreas[key]; ok {
		return key, true
	}
	if canonical, ok := focusSynonyms[key]; ok {
		return canonical, true
	}
	return DefaultFocusArea, false
}

// NormalizeIndustry resolves an industry label to a canonical key,
// defaulting to IndustryOther.
func NormalizeIndustry(label string) (string, bool) {
	key := normalizeKey(label)
	if industries[key] {
		return key, true
	}
	if canonical, ok := industrySynonyms[key]; ok {
		return canonical, true
	}
	return IndustryOther, false
}

// GoalKey resolves a free-text goal label to a fixed internal goal key,
// defaulting to DefaultGoalKey.
func GoalKey(label string) (string, bool) {
	if key, ok := goalKeys[normalizeKey(label)]; ok {
		return key, true
	}
	return DefaultGoalKey, false
}

// ForFocusArea returns the canonical schema for a focus area key as returned
// by NormalizeFocusArea. Unknown keys yield the default focus area schema so
// callers always receive a usable schema.
func ForFocusArea(key string) FocusArea {
	if fa, ok := focusAreas[key]; ok {
		return fa
	}
	return focusAreas[DefaultFocusArea]
}

// FocusAreaKeys returns the canonical focus area keys in a stable order.
func FocusAreaKeys() []string {
	return []string{FocusCopywriting, FocusUXUI, FocusMobile, FocusCTA, FocusSEO}
}

// CategoryNames returns the ordered category names for a focus area key.
func CategoryNames(key string) []string {
	fa := ForFocusArea(key)
	names := make([]string, len(fa.Categories))
	for i, c := range fa.Categories {
		names[i] = c.Name
	}
	return names
}
