package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbellini/landing-optimizer/internal/schema"
	"github.com/mbellini/landing-optimizer/internal/scrape"
)

func testPage() *scrape.Page {
	return &scrape.Page{
		URL:             "https://example.com",
		Title:           "Acme Widgets",
		MetaDescription: "Widgets that ship fast",
		H1:              "Ship widgets faster",
		Headings:        []string{"Why Acme", "Pricing"},
		CTATexts:        []string{"Get started", "Book a demo"},
		BodyText:        "Acme builds reliable widgets for growing teams.",
		HasViewportMeta: true,
		ImageCount:      3,
	}
}

func TestBuildReportPrompt_EmbedsCanonicalSchema(t *testing.T) {
	fa := schema.ForFocusArea(schema.FocusSEO)
	got := BuildReportPrompt(fa, testPage(), "local", []string{"Lead Generation"})

	for _, cat := range fa.Categories {
		assert.Contains(t, got, `"category": "`+cat.Name+`"`)
		for _, el := range cat.Elements {
			assert.Contains(t, got, `"element": "`+el+`"`)
		}
	}

	// Categories must appear in canonical order.
	last := -1
	for _, cat := range fa.Categories {
		idx := strings.Index(got, cat.Name)
		assert.Greater(t, idx, last, "category %q out of order", cat.Name)
		last = idx
	}
}

func TestBuildReportPrompt_IncludesRequestContext(t *testing.T) {
	fa := schema.ForFocusArea(schema.FocusCopywriting)
	got := BuildReportPrompt(fa, testPage(), "saas", []string{"signups", "engagement"})

	assert.Contains(t, got, "Industry: saas")
	assert.Contains(t, got, "Business goals: signups, engagement")
	assert.Contains(t, got, fa.FocusHint)
	assert.Contains(t, got, "Return ONLY the JSON array")
}

func TestBuildReportPrompt_IncludesPageSignals(t *testing.T) {
	got := BuildReportPrompt(schema.ForFocusArea(schema.FocusSEO), testPage(), "other", nil)

	assert.Contains(t, got, "URL: https://example.com")
	assert.Contains(t, got, "Title tag: Acme Widgets")
	assert.Contains(t, got, "Meta description: Widgets that ship fast")
	assert.Contains(t, got, "Canonical URL: Not found")
	assert.Contains(t, got, "H1: Ship widgets faster")
	assert.Contains(t, got, "Other headings: Why Acme | Pricing")
	assert.Contains(t, got, "CTA texts: Get started | Book a demo")
	assert.Contains(t, got, "Viewport meta present: true")
	assert.Contains(t, got, "Images: 3 (0 missing alt text)")
	assert.Contains(t, got, "Acme builds reliable widgets")
}

func TestBuildReportPrompt_NilPage(t *testing.T) {
	got := BuildReportPrompt(schema.ForFocusArea(schema.FocusCopywriting), nil, "other", nil)
	assert.Contains(t, got, "Page content: not available.")
}

func TestBuildReportPrompt_TruncatesLongBodyText(t *testing.T) {
	page := testPage()
	page.BodyText = strings.Repeat("x", maxSiteTextChars+500)

	got := BuildReportPrompt(schema.ForFocusArea(schema.FocusCopywriting), page, "other", nil)
	assert.NotContains(t, got, strings.Repeat("x", maxSiteTextChars+1))
	assert.Contains(t, got, strings.Repeat("x", maxSiteTextChars)+"...")
}

func TestBuildReportPrompt_OmitsEmptyGoals(t *testing.T) {
	got := BuildReportPrompt(schema.ForFocusArea(schema.FocusCopywriting), testPage(), "other", nil)
	assert.NotContains(t, got, "Business goals:")
}
