// Package prompt builds the instruction text sent to the LLM, embedding the
// exact canonical report schema the response must follow.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mbellini/landing-optimizer/internal/schema"
	"github.com/mbellini/landing-optimizer/internal/scrape"
)

// maxSiteTextChars caps how much scraped body text goes into the prompt.
const maxSiteTextChars = 6000

// BuildReportPrompt constructs the generation prompt for one analysis
// request. The category and element names are embedded verbatim, in order,
// so a well-behaved model returns a report the normalizer can map one-to-one.
func BuildReportPrompt(fa schema.FocusArea, page *scrape.Page, industry string, goals []string) string {
	var sb strings.Builder

	sb.WriteString("You are a conversion rate optimization expert analyzing a landing page.\n")
	sb.WriteString(fa.FocusHint)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Industry: %s\n", industry)
	if len(goals) > 0 {
		fmt.Fprintf(&sb, "Business goals: %s\n", strings.Join(goals, ", "))
	}
	sb.WriteString("\n")

	sb.WriteString("Return ONLY a JSON array with EXACTLY these categories and elements, in this order:\n[\n")
	for i, cat := range fa.Categories {
		fmt.Fprintf(&sb, "  {\"category\": %q, \"elements\": [\n", cat.Name)
		for j, el := range cat.Elements {
			fmt.Fprintf(&sb, "    {\"element\": %q, \"siteText\": \"...\", \"problem\": \"...\", \"solution\": \"...\", \"actions\": [\"...\", \"...\", \"...\"]}", el)
			if j < len(cat.Elements)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("  ]}")
		if i < len(fa.Categories)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- siteText must be copied verbatim from the page content below, or \"Not found\" if absent.\n")
	sb.WriteString("- problem and solution must be specific to this page, never generic.\n")
	sb.WriteString("- actions must contain exactly 3 concrete recommendations.\n")
	sb.WriteString("- Return ONLY the JSON array, no markdown, no explanation, no code blocks.\n\n")

	writePageSection(&sb, page)

	return sb.String()
}

// writePageSection renders the scraped page signals for the model.
func writePageSection(sb *strings.Builder, page *scrape.Page) {
	if page == nil {
		sb.WriteString("Page content: not available.\n")
		return
	}

	sb.WriteString("Page content:\n\"\"\"\n")
	fmt.Fprintf(sb, "URL: %s\n", page.URL)
	fmt.Fprintf(sb, "Title tag: %s\n", orNotFound(page.Title))
	fmt.Fprintf(sb, "Meta description: %s\n", orNotFound(page.MetaDescription))
	fmt.Fprintf(sb, "Canonical URL: %s\n", orNotFound(page.CanonicalURL))
	fmt.Fprintf(sb, "H1: %s\n", orNotFound(page.H1))
	if len(page.Headings) > 0 {
		fmt.Fprintf(sb, "Other headings: %s\n", strings.Join(page.Headings, " | "))
	}
	if len(page.CTATexts) > 0 {
		fmt.Fprintf(sb, "CTA texts: %s\n", strings.Join(page.CTATexts, " | "))
	}
	fmt.Fprintf(sb, "Viewport meta present: %t\n", page.HasViewportMeta)
	fmt.Fprintf(sb, "Structured data present: %t\n", page.HasStructuredData)
	fmt.Fprintf(sb, "Images: %d (%d missing alt text)\n", page.ImageCount, page.ImagesMissingAlt)

	body := page.BodyText
	if len(body) > maxSiteTextChars {
		body = body[:maxSiteTextChars] + "..."
	}
	fmt.Fprintf(sb, "\nBody text:\n%s\n", body)
	sb.WriteString("\"\"\"\n")
}

func orNotFound(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not found"
	}
	return s
}
