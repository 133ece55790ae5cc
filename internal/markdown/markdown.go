// Package markdown converts the constrained markdown subset the assistant
// emits (bold, asterisk/dash bullets, newlines) into HTML fragments for
// display. It is deliberately not a general markdown engine: malformed input
// degrades to partially-converted text instead of erroring.
package markdown

import (
	"regexp"
	"strings"
)

var (
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletRe   = regexp.MustCompile(`(<br />)?[*-] (.*?)(<br />|$)`)
	doubleBrRe = regexp.MustCompile(`<br />\s*<br />`)
)

// ToHTML renders text as an HTML fragment.
func ToHTML(text string) string {
	html := strings.ReplaceAll(text, "\n", "<br />")
	html = boldRe.ReplaceAllString(html, "<strong>$1</strong>")
	html = bulletRe.ReplaceAllString(html, "<li>$2</li>")

	if strings.Contains(html, "<li>") {
		html = "<ul>" + html + "</ul>"
		html = strings.ReplaceAll(html, "</li><br />", "</li>")
	}

	html = doubleBrRe.ReplaceAllString(html, "<br />")
	return html
}
