package goquery

import (
	"math"
	"unicode/utf8"

	"github.com/fwojciec/clarify"
	"golang.org/x/net/html"
)

// Approximate glyph metrics relative to the font size.
const (
	lineHeightRatio = 1.5
	charWidthRatio  = 0.5
	blockGapRatio   = 0.5
)

// flow stacks block boxes vertically, one per block that contains text.
// Inline text owners share the box of their block.
type flow struct {
	y     float64
	width float64
	boxes map[*html.Node]clarify.Rect
}

func newFlow(width float64) *flow {
	return &flow{width: width, boxes: make(map[*html.Node]clarify.Rect)}
}

// place returns the box for a text owner with style cs. blockText is only
// called when the owner's block has not been placed yet.
func (f *flow) place(cs *computedStyle, blockText func() string) clarify.Rect {
	if !cs.rendered || cs.block == nil {
		return clarify.Rect{}
	}
	if box, ok := f.boxes[cs.block]; ok {
		return box
	}

	text := blockText()
	perLine := max(math.Floor(f.width/(cs.fontSize*charWidthRatio)), 1)
	lines := max(math.Ceil(float64(utf8.RuneCountInString(text))/perLine), 1)
	if cs.fontSize <= 0 {
		lines = 0
	}

	f.y += cs.fontSize * blockGapRatio
	box := clarify.Rect{
		X:      0,
		Y:      f.y,
		Width:  f.width,
		Height: lines * cs.fontSize * lineHeightRatio,
	}
	f.y += box.Height
	f.boxes[cs.block] = box
	return box
}
