// Copyright 2025 Wikidown Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package markdown parses document text into the pkg/ast element forest:
// headings (nested), wiki-links, and inline references. Built on goldmark,
// which already refuses to treat "#" as a heading marker inside fenced or
// indented code blocks, so that exclusion needs no extra handling here.
package markdown

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yuin/goldmark"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/buffer"
	"github.com/wikidown/wikidown/pkg/markdown/wikilink"
)

var markdownParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
		extension.Footnote,
		wikilink.New(),
	),
)

// flatItem is a single element discovered during the pre-order walk,
// before heading re-parenting.
type flatItem struct {
	heading  *ast.Heading // non-nil for headings
	wikilink *ast.WikiLink
	inline   *ast.InlineRef
	start    int
}

// Parse parses buf's text into an ordered forest of top-level elements,
// with headings nested per the strictly-increasing-level rule and scope
// ranges computed. The parser never fails: malformed link-like sequences
// are simply not recognized as links.
func Parse(buf *buffer.Buffer) []ast.Element {
	source := []byte(buf.Text())
	reader := text.NewReader(source)
	root := markdownParser.Parser().Parse(reader)

	var flat []flatItem
	var walk func(n gmast.Node)
	walk = func(n gmast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch v := child.(type) {
			case *gmast.Heading:
				seg := headingSegment(v, source)
				h := &ast.Heading{
					Level: v.Level,
					Text:  string(v.Text(source)),
					Range: offsetRangeToPosition(buf, seg.Start, seg.Stop),
				}
				flat = append(flat, flatItem{heading: h, start: seg.Start})
				// Heading text is already extracted; don't descend into it.
			case *wikilink.Node:
				seg := v.Segment()
				w := &ast.WikiLink{
					TargetDoc:     v.TargetDoc,
					TargetHeading: v.TargetHeading,
					Range:         offsetRangeToPosition(buf, seg.Start, seg.Stop),
				}
				flat = append(flat, flatItem{wikilink: w, start: seg.Start})
			case *gmast.Link:
				seg := linkSegment(v)
				ref := &ast.InlineRef{
					Target: string(v.Destination),
					Range:  offsetRangeToPosition(buf, seg.Start, seg.Stop),
				}
				flat = append(flat, flatItem{inline: ref, start: seg.Start})
			default:
				walk(child)
			}
		}
	}
	walk(root)

	eof := buf.FullRange().End
	return nest(flat, eof)
}

// ParseString is a convenience wrapper over Parse for callers that hold a
// raw string rather than a constructed Buffer.
func ParseString(text string) []ast.Element {
	return Parse(buffer.New(text))
}

// headingSegment returns the byte span of a heading's line, preferring its
// Lines() block segment and falling back to its inline text segment.
// goldmark's Lines() starts at the heading text, after any "#" marker, so
// the start is moved back to the beginning of that line.
func headingSegment(h *gmast.Heading, source []byte) text.Segment {
	lines := h.Lines()
	if lines.Len() > 0 {
		start := lines.At(0).Start
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		last := lines.At(lines.Len() - 1)
		return text.NewSegment(start, last.Stop)
	}
	if h.FirstChild() != nil {
		if s, ok := h.FirstChild().(interface{ Segment() text.Segment }); ok {
			return s.Segment()
		}
	}
	return text.NewSegment(0, 0)
}

// linkSegment approximates a link's range as the span of its link text;
// InlineRef is an optional, config-gated feature and does not need
// pixel-perfect ranges the way wikilinks and headings do.
func linkSegment(l *gmast.Link) text.Segment {
	if l.FirstChild() != nil {
		if s, ok := l.FirstChild().(interface{ Segment() text.Segment }); ok {
			return s.Segment()
		}
	}
	return text.NewSegment(0, 0)
}

func offsetRangeToPosition(buf *buffer.Buffer, start, end int) ast.Range {
	return ast.Range{
		Start: buf.OffsetToPosition(start),
		End:   buf.OffsetToPosition(end),
	}
}

// nest re-parents flatItem headings so that each becomes a child of the
// nearest preceding heading with strictly smaller level, attaches
// non-heading elements under the nearest enclosing heading, and computes
// each heading's scope: from its own start to the start of the next
// heading of equal-or-lower level (or EOF).
func nest(flat []flatItem, eof buffer.Position) []ast.Element {
	var top []ast.Element
	var stack []*ast.Heading
	var headingOrder []*ast.Heading

	for _, item := range flat {
		switch {
		case item.heading != nil:
			h := item.heading
			for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				top = append(top, h)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, h)
			}
			stack = append(stack, h)
			headingOrder = append(headingOrder, h)

		case item.wikilink != nil:
			attach(item.wikilink, &stack, &top)

		case item.inline != nil:
			attach(item.inline, &stack, &top)
		}
	}

	// Each heading's scope runs from its own start to the start of the
	// next heading of equal-or-lower level, or EOF when none follows.
	for i, h := range headingOrder {
		h.Scope.Start = h.Range.Start
		h.Scope.End = eof
		for j := i + 1; j < len(headingOrder); j++ {
			if headingOrder[j].Level <= h.Level {
				h.Scope.End = headingOrder[j].Range.Start
				break
			}
		}
	}

	return top
}

func attach(e ast.Element, stack *[]*ast.Heading, top *[]ast.Element) {
	if len(*stack) == 0 {
		*top = append(*top, e)
		return
	}
	parent := (*stack)[len(*stack)-1]
	parent.Children = append(parent.Children, e)
}
