package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy strips scripts, iframes and event handlers but keeps benign
// markup; the feed cells are human-entered and occasionally pasted from rich
// text editors.
var ugcPolicy = bluemonday.UGCPolicy()

// normalizeSpace collapses runs of whitespace into one space and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanText normalizes whitespace (alias for normalizeSpace)
func cleanText(s string) string {
	return normalizeSpace(s)
}

// htmlToText converts HTML to plain text, collapsing whitespace.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html // Fallback to original if parsing fails
	}
	return cleanText(doc.Text())
}

// SanitizeText reduces an untrusted cell or form field to clean plain text:
// unsafe markup is removed first so script bodies never leak into the text.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.ContainsRune(s, '<') || strings.ContainsRune(s, '&') {
		return htmlToText(ugcPolicy.Sanitize(s))
	}
	return cleanText(s)
}

// EnsureScheme prepends https:// when a URL carries no explicit scheme.
func EnsureScheme(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// TruncateText cuts a string to max runes, appending ellipsis if truncated.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
