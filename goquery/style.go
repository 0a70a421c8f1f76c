package goquery

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// baseFontSize is the root font size in pixels.
const baseFontSize = 16

// tagFontSizes are user agent default font sizes in pixels.
var tagFontSizes = map[string]float64{
	"h1":    32,
	"h2":    24,
	"h3":    18.72,
	"h4":    16,
	"h5":    13.28,
	"h6":    10.72,
	"small": 13.33,
}

// notRendered elements never produce boxes.
var notRendered = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
	"title":    true,
	"meta":     true,
	"link":     true,
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"button": true, "cite": true, "code": true, "data": true, "dfn": true,
	"em": true, "i": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
}

// computedStyle is the resolved presentation of an element.
type computedStyle struct {
	display    string
	visibility string
	opacity    float64 // effective, ancestors included
	fontSize   float64
	ariaHidden bool
	rendered   bool

	// block is the nearest block-level ancestor-or-self.
	block *html.Node
}

var rootStyle = &computedStyle{
	display:    "block",
	visibility: "visible",
	opacity:    1,
	fontSize:   baseFontSize,
	rendered:   true,
}

func computeStyle(n *html.Node, parent *computedStyle) *computedStyle {
	decl := parseStyle(attr(n, "style"))
	tag := n.Data

	display := "block"
	if inlineTags[tag] {
		display = "inline"
	}
	if hasAttr(n, "hidden") {
		display = "none"
	}
	if v := decl["display"]; v != "" {
		display = v
	}
	if notRendered[tag] {
		display = "none"
	}

	cs := &computedStyle{
		display:    display,
		visibility: parent.visibility,
		opacity:    parent.opacity,
		fontSize:   fontSize(tag, decl["font-size"], parent.fontSize),
		ariaHidden: parent.ariaHidden || strings.EqualFold(attr(n, "aria-hidden"), "true"),
		rendered:   parent.rendered && display != "none",
		block:      parent.block,
	}
	if v := decl["visibility"]; v != "" {
		cs.visibility = v
	}
	if v, err := strconv.ParseFloat(decl["opacity"], 64); err == nil {
		cs.opacity *= min(max(v, 0), 1)
	}
	if display != "none" && !strings.HasPrefix(display, "inline") {
		cs.block = n
	}
	return cs
}

// fontSize resolves an inline font-size declaration, falling back to the tag
// default and then to the inherited size.
func fontSize(tag, decl string, inherited float64) float64 {
	if size, ok := parseLength(decl, inherited); ok {
		return size
	}
	if size, ok := tagFontSizes[tag]; ok {
		return size
	}
	return inherited
}

// parseLength understands px, em, rem and percentages.
func parseLength(v string, parent float64) (float64, bool) {
	v = strings.TrimSpace(v)
	units := []struct {
		suffix string
		scale  float64
	}{
		{"rem", baseFontSize},
		{"px", 1},
		{"em", parent},
		{"%", parent / 100},
	}
	for _, u := range units {
		num, ok := strings.CutSuffix(v, u.suffix)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return f * u.scale, true
	}
	return 0, false
}

// parseStyle splits an inline style attribute into lowercased properties.
// Later declarations win.
func parseStyle(style string) map[string]string {
	decl := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		decl[strings.ToLower(strings.TrimSpace(prop))] = strings.ToLower(value)
	}
	return decl
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
