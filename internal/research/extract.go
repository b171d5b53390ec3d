package research

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{
	"article",
	".article-body",
	".post-content",
	".entry-content",
	"main",
	".content",
}

var whitespaceExpr = regexp.MustCompile(`\s+`)

// ExtractContent strips non-content markup from a page and returns the
// largest plausible content block as plain text, truncated to maxChars.
// Returns "" when the markup cannot be parsed at all.
func ExtractContent(markup string, maxChars int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find("script, style, nav, header, footer, aside").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	var content string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content = sel.Text()
		if strings.TrimSpace(content) != "" {
			break
		}
	}

	if strings.TrimSpace(content) == "" {
		content = doc.Find("body").Text()
	}

	content = whitespaceExpr.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	if maxChars > 0 && len(content) > maxChars {
		content = content[:maxChars]
	}
	return content
}
