package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// humanizeName turns an identifier into a display title: camelCase and
// snake_case boundaries become spaces and each word is title-cased.
// "orderLineItem" and "order_line_item" both become "Order Line Item".
func humanizeName(name string) string {
	words := splitIdentWords(name)
	if len(words) == 0 {
		return name
	}
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// splitIdentWords breaks an identifier at underscores, hyphens, and
// lower-to-upper case transitions. Runs of capitals stay together so
// initialisms like "HTTPServer" split as "HTTP", "Server".
func splitIdentWords(name string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
