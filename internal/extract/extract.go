// Turn scraped HTML into plain text the scorer can match against.

package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// FromHTML extracts the readable body text of an HTML document. Malformed
// HTML is not an error; the extractor returns whatever text it can find,
// possibly the empty string.
func FromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	//strip non-content elements before reading text
	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return CollapseWhitespace(doc.Text())
	}
	return CollapseWhitespace(body.Text())
}

// CollapseWhitespace squashes runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// FoldDiacritics strips combining marks ("Café" -> "Cafe") so configured
// terms match accented spellings in scraped text.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
