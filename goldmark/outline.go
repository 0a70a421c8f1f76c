// Package goldmark reads the structure of markdown page content.
package goldmark

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/clarify"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
)

// Outline returns the headings of a markdown page in document order.
// Anchors are URL-safe and unique within the page.
func Outline(markdown string) []clarify.Heading {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []clarify.Heading
	seen := make(map[string]int)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		title := strings.Join(strings.Fields(plainText(h, src)), " ")
		if title == "" {
			return ast.WalkSkipChildren, nil
		}

		anchor := anchorFor(title)
		if n, ok := seen[anchor]; ok {
			seen[anchor]++
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}

		headings = append(headings, clarify.Heading{
			Level:  h.Level,
			Title:  title,
			Anchor: anchor,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// plainText concatenates the text under n, dropping inline markup.
func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.Label(src))
		default:
			sb.WriteString(plainText(c, src))
		}
	}
	return sb.String()
}

// anchorFor lowercases title, joins words with hyphens and drops the rest.
func anchorFor(title string) string {
	var sb strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !hyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				hyphen = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
