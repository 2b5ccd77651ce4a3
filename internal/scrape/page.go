package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page holds the extracted signals of one landing page.
type Page struct {
	URL               string
	Title             string
	MetaDescription   string
	CanonicalURL      string
	H1                string
	Headings          []string // h2/h3 texts, capped
	CTATexts          []string // button and prominent link texts, capped
	BodyText          string
	HasViewportMeta   bool
	HasStructuredData bool
	ImageCount        int
	ImagesMissingAlt  int
}

// Extraction caps keep prompts bounded on long pages.
const (
	maxHeadings = 12
	maxCTATexts = 10
)

// ParsePage extracts page signals from raw HTML.
func ParsePage(urlStr, html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	page := &Page{URL: urlStr}

	page.Title = cleanText(doc.Find("title").First().Text())
	page.MetaDescription, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	page.MetaDescription = cleanText(page.MetaDescription)
	page.CanonicalURL, _ = doc.Find(`link[rel="canonical"]`).First().Attr("href")
	page.H1 = cleanText(doc.Find("h1").First().Text())

	doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := cleanText(s.Text()); text != "" {
			page.Headings = append(page.Headings, text)
		}
		return len(page.Headings) < maxHeadings
	})

	seenCTA := make(map[string]bool)
	doc.Find(`button, a[class*="btn"], a[class*="button"], a[class*="cta"], input[type="submit"]`).
		EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := cleanText(s.Text())
			if text == "" {
				text = cleanText(s.AttrOr("value", ""))
			}
			if text != "" && !seenCTA[text] {
				seenCTA[text] = true
				page.CTATexts = append(page.CTATexts, text)
			}
			return len(page.CTATexts) < maxCTATexts
		})

	page.HasViewportMeta = doc.Find(`meta[name="viewport"]`).Length() > 0
	page.HasStructuredData = doc.Find(`script[type="application/ld+json"]`).Length() > 0

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		page.ImageCount++
		if cleanText(s.AttrOr("alt", "")) == "" {
			page.ImagesMissingAlt++
		}
	})

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, svg, iframe").Remove()
	page.BodyText = cleanText(body.Text())

	return page, nil
}

// cleanText collapses whitespace runs to single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
