package source

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	innerSpaceRegex = regexp.MustCompile(`[^\S\n]+`)
	newlineRegex    = regexp.MustCompile(`\n{3,}`)
	invisibleRegex  = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}\x{00AD}\x{2060}-\x{2064}]+`)
)

// htmlToText converts an HTML email body to readable plain text. Scripts,
// styles, and invisible Unicode are stripped; block elements become line
// breaks.
func htmlToText(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, head, meta, link").Remove()
	doc.Find("p, div, br, h1, h2, h3, h4, h5, h6, li, tr").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
	})

	text := doc.Text()
	text = invisibleRegex.ReplaceAllString(text, "")
	text = innerSpaceRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			clean = append(clean, line)
		}
	}
	text = strings.Join(clean, "\n")
	text = newlineRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}
