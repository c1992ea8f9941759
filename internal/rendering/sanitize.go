package rendering

import (
	"regexp"
	"strings"
)

// Precompiled patterns, applied in declaration order by Sanitize.
var (
	lineEndings = regexp.MustCompile(`\r\n?`)

	boldMarkup   = regexp.MustCompile(`\*\*([^*\n]+?)\*\*`)
	// The opening "*" must not follow a word character, so "2*3*4" stays literal.
	italicMarkup = regexp.MustCompile(`(?m)(^|[^\w*])\*([^*\s][^*\n]*?)\*`)

	// Any heading marker at a line start; mid-line only "##" and deeper, so
	// "Item # 3", "C#" and "#123" are left alone.
	headingMarker = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+|([ \t])#{2,6}[ \t]+`)

	inlineCode    = regexp.MustCompile("`([^`\n]+)`")
	markdownLink  = regexp.MustCompile(`\[([^\]\n]+)\]\([^)\n]*\)`)
	strikethrough = regexp.MustCompile(`~~([^~\n]+?)~~`)
	listBullet    = regexp.MustCompile(`(?m)^[ \t]*[-•*][ \t]+`)

	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Sanitize strips inline markdown from free text so it can be placed in a document
// that has no rich-text support. Malformed markup is left as literal text.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = lineEndings.ReplaceAllString(text, "\n")
	text = boldMarkup.ReplaceAllString(text, "$1")
	text = italicMarkup.ReplaceAllString(text, "$1$2")
	text = headingMarker.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = markdownLink.ReplaceAllString(text, "$1")
	text = strikethrough.ReplaceAllString(text, "$1")
	text = listBullet.ReplaceAllString(text, "")
	text = excessNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
