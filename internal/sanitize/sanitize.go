// Package sanitize turns raw spreadsheet cells into plain text.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// blockTags are elements whose boundaries separate words in the rendered text.
const blockTags = "br, p, div, li, ul, ol, tr, td, th, table, h1, h2, h3, h4, h5, h6"

// entities left behind by double-escaped exports ("&amp;nbsp;" decodes to "&nbsp;").
var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&ndash;", "–",
	"&mdash;", "—",
	"&deg;", "°",
	"&laquo;", "«",
	"&raquo;", "»",
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"\u00a0", " ",
)

// maxUnescape bounds how many escaping layers are peeled off a cell.
const maxUnescape = 3

// tagLike matches markup that survives entity decoding ("&lt;p&gt;" becomes "<p>").
var tagLike = regexp.MustCompile(`<\s*/?\s*[a-zA-Z!][^<>]*>`)

// Text strips markup, decodes entities, applies NFC and collapses whitespace.
// It never fails: malformed markup degrades to whatever text the parser recovers.
func Text(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := raw
	if strings.ContainsAny(raw, "<&") {
		text = extract(raw)
	}
	text = entities.Replace(text)
	for i := 0; i < maxUnescape && tagLike.MatchString(text); i++ {
		text = entities.Replace(extract(text))
	}
	if tagLike.MatchString(text) {
		text = tagLike.ReplaceAllString(text, " ")
	}
	text = norm.NFC.String(text)

	return strings.Join(strings.Fields(text), " ")
}

// Anomalous reports markup that the parser had to guess about.
func Anomalous(raw string) bool {
	return strings.Count(raw, "<") != strings.Count(raw, ">")
}

func extract(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return stripTags(raw)
	}

	doc.Find("script, style").Remove()
	doc.Find(blockTags).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml(" ")
	})

	return doc.Text()
}

// stripTags is the fallback when the document cannot be parsed at all.
func stripTags(raw string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range raw {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
			sb.WriteRune(' ')
		case depth == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
