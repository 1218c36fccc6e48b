package graph

import "strings"

// docTags are the recognized tag prefixes inside free-text
// documentation. Anything else is plain summary text, never an error.
var docTags = []string{"title", "description", "example", "remarks"}

// ParseDocComment segments free-text documentation into the recognized
// sub-vocabulary. A line beginning with "title:", "description:",
// "example:", or "remarks:" (case-insensitive) opens that section;
// following untagged lines continue it. Text before the first tag is
// the summary. Unrecognized tag-like lines stay in whatever section is
// open.
//
// Returns nil when the text is empty or whitespace.
func ParseDocComment(text string) *DocComment {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	doc := &DocComment{}
	section := "summary"
	var current []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if content == "" {
			return
		}
		switch section {
		case "summary":
			doc.Summary = content
		case "title":
			doc.Title = content
		case "description":
			doc.Description = content
		case "example":
			doc.Example = content
		case "remarks":
			doc.Remarks = content
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if tag, rest, ok := matchDocTag(line); ok {
			flush()
			section = tag
			if rest != "" {
				current = append(current, rest)
			}
			continue
		}
		current = append(current, line)
	}
	flush()

	if doc.Empty() {
		return nil
	}
	return doc
}

// matchDocTag reports whether line opens a recognized tag section and
// returns the tag name plus any text after the colon.
func matchDocTag(line string) (tag, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return "", "", false
	}
	candidate := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
	for _, t := range docTags {
		if candidate == t {
			return t, strings.TrimSpace(trimmed[idx+1:]), true
		}
	}
	return "", "", false
}
