package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose close introduces a line break in flattened text.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "pre": {}, "tr": {}, "table": {},
}

// skipTags are elements whose text content is dropped entirely.
var skipTags = map[string]struct{}{
	"script": {},
	"style":  {},
}

// Flatten extracts the text of an HTML fragment. Tags are dropped, entities
// are decoded, <br> and closing block elements become newlines, and script
// and style contents are skipped. Inputs without markup pass through intact.
func Flatten(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return html.UnescapeString(fragment)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var builder strings.Builder
	skipDepth := 0
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			return builder.String()
		case html.TextToken:
			if skipDepth == 0 {
				builder.Write(tokenizer.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if _, ok := skipTags[tag]; ok && tokenType == html.StartTagToken {
				skipDepth++
				continue
			}
			if tag == "br" {
				builder.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if _, ok := skipTags[tag]; ok {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if _, ok := blockTags[tag]; ok {
				builder.WriteByte('\n')
			}
		}
	}
}

// FlattenLine flattens a fragment and collapses all whitespace runs into
// single spaces, yielding a one-line rendering of the text.
func FlattenLine(fragment string) string {
	return strings.Join(strings.Fields(Flatten(fragment)), " ")
}

// Lines flattens a fragment and returns its non-empty trimmed lines.
func Lines(fragment string) []string {
	var lines []string
	for _, line := range strings.Split(Flatten(fragment), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
