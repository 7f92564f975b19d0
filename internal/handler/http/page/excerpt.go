package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt returns the visible text of s, which may contain markup, collapsed
// to single spaces and cut to limit runes on a word boundary.
func Excerpt(s string, limit int) string {
	text := PlainText(s)
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// PlainText strips markup, scripts and styles from s.
func PlainText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find("br, p, div, li").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Paragraphs splits text on blank lines for rendering long fields such as a
// biography or news content.
func Paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = PlainText(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
