// Package htmlutil holds the text helpers shared by the portal extractor.
package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// Clean collapses inner whitespace and strips non-printable characters,
// the portal pads cell text with both.
func Clean(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// TrailingText returns the text of node with the leading label prefix
// removed, used when a label and its value share one container.
func TrailingText(node *html.Node, label string) string {
	text := Clean(GetText(node))
	idx := strings.Index(strings.ToLower(text), strings.ToLower(label))
	if idx < 0 {
		return text
	}
	rest := text[idx+len(label):]
	return strings.Trim(rest, " :- ")
}
