// Package poster resolves the image shown on a recommendation card: the
// remote poster when it loads, otherwise a generated placeholder labelled
// with the movie title.
package poster

import (
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
	"strings"
)

const (
	dataURIPrefix = "data:image/svg+xml;base64,"

	// Placeholder geometry and colours
	Width      = 300
	Height     = 450
	Background = "#333"
	TextColor  = "#e50914"
)

// PlaceholderSVG renders the placeholder graphic for title
func PlaceholderSVG(title string) string {
	if title == "" {
		title = "Movie"
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" fill="#222">`+
			`<rect width="%d" height="%d" fill="%s"/>`+
			`<text x="50%%" y="50%%" font-family="Arial" font-size="24" text-anchor="middle" fill="%s">%s</text>`+
			`</svg>`,
		Width, Height, Width, Height, Background, TextColor, html.EscapeString(title),
	)
}

// Placeholder returns the placeholder as a base64 data URI
func Placeholder(title string) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(PlaceholderSVG(title)))
}

// IsPlaceholder reports whether uri is a generated placeholder
func IsPlaceholder(uri string) bool {
	return strings.HasPrefix(uri, dataURIPrefix)
}

var textRE = regexp.MustCompile(`<text[^>]*>(.*?)</text>`)

// PlaceholderTitle extracts the label embedded in a placeholder URI
func PlaceholderTitle(uri string) (string, bool) {
	if !IsPlaceholder(uri) {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	if err != nil {
		return "", false
	}
	m := textRE.FindStringSubmatch(string(raw))
	if m == nil {
		return "", false
	}
	return html.UnescapeString(m[1]), true
}
