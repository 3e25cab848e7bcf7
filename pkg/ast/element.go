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

// Package ast defines the parsed-content tree produced for a document: a
// forest of headings, wiki-links, and other reference-bearing spans.
package ast

import "github.com/wikidown/wikidown/pkg/buffer"

// Range is a half-open span within a document's text buffer.
type Range = buffer.Range

// Element is one node of a document's parsed-content forest.
//
// Headings are the only kind that nests: a heading's Children are the
// headings strictly below it in the document, re-parented under the
// nearest preceding heading of strictly smaller level. WikiLink and
// InlineRef elements are always leaves.
type Element interface {
	// ElementRange returns the span this element occupies in the source.
	ElementRange() Range
	isElement()
}

// Heading is an ATX heading (`#` through `######`). Range covers only the
// heading line; Scope covers the heading line plus everything until the
// next heading of equal or lower level, or EOF. Children are nested
// headings of strictly greater level.
type Heading struct {
	Level    int
	Text     string
	Range    Range
	Scope    Range
	Children []Element
}

func (h *Heading) ElementRange() Range { return h.Range }
func (*Heading) isElement()            {}

// WikiLink is a `[[doc]]`, `[[doc#heading]]`, or `[[#heading]]` reference.
// TargetDoc is nil for `[[#heading]]`; TargetHeading is nil for `[[doc]]`.
type WikiLink struct {
	TargetDoc     *string
	TargetHeading *string
	Range         Range
}

func (w *WikiLink) ElementRange() Range { return w.Range }
func (*WikiLink) isElement()            {}

// InlineRef is a non-wikilink Markdown link form the server treats as a
// reference candidate (subject to the inlineRefs configuration setting).
type InlineRef struct {
	Target string
	Range  Range
}

func (i *InlineRef) ElementRange() Range { return i.Range }
func (*InlineRef) isElement()            {}

// Headings returns the top-level headings among elements, in document
// order. Non-heading elements (top-level wikilinks/inline refs outside any
// heading's scope) are omitted.
func Headings(elements []Element) []*Heading {
	var out []*Heading
	for _, e := range elements {
		if h, ok := e.(*Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Walk visits every element in the forest in pre-order (a heading before
// its children), calling visit on each.
func Walk(elements []Element, visit func(Element)) {
	for _, e := range elements {
		visit(e)
		if h, ok := e.(*Heading); ok {
			Walk(h.Children, visit)
		}
	}
}
