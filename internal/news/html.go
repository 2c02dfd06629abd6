package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const wordsPerMinute = 200

// entityReplacer covers the entities WordPress leaves in rendered titles
// and term names.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&hellip;", "...",
)

// decodeEntities resolves the HTML entities found in WordPress text
// fields. It is intentionally narrow: titles and names are short strings,
// not documents.
func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// stripHTML reduces rendered HTML to its plain text, decoding entities
// along the way. Used for excerpts and word counting; article bodies stay
// raw HTML and are sanitized at the render boundary instead.
func stripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(decodeEntities(s))
	}
	return strings.TrimSpace(doc.Text())
}

// readTime estimates reading minutes from the stripped body at 200 words
// per minute, never reporting less than one minute.
func readTime(content string) int {
	words := len(strings.Fields(stripHTML(content)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
