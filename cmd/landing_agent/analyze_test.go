package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFilename(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		focusArea string
		want      string
	}{
		{
			name:      "https scheme stripped",
			url:       "https://example.com/pricing",
			focusArea: "seo",
			want:      "report_example_com_pricing_seo.json",
		},
		{
			name:      "http scheme stripped",
			url:       "http://example.com",
			focusArea: "copywriting",
			want:      "report_example_com_copywriting.json",
		},
		{
			name:      "query characters sanitized",
			url:       "https://example.com/?utm_source=x&b=1",
			focusArea: "cta",
			want:      "report_example_com__utm_source_x_b_1_cta.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportFilename(tt.url, tt.focusArea))
		})
	}
}

func TestReportFilename_TruncatesLongURLs(t *testing.T) {
	url := "https://example.com/" + strings.Repeat("a", 200)
	got := reportFilename(url, "seo")
	assert.LessOrEqual(t, len(got), len("report_")+60+len("_seo.json"))
	assert.True(t, strings.HasSuffix(got, "_seo.json"))
}
