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

// Package wikilink is a goldmark inline-parser extension recognizing
// `[[doc]]`, `[[doc#heading]]`, and `[[#heading]]` reference syntax.
package wikilink

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Extension registers the wikilink inline parser with a goldmark Markdown
// instance.
type Extension struct{}

// New returns a goldmark.Extender for wikilink syntax.
func New() goldmark.Extender {
	return &Extension{}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&inlineParser{}, 100), // higher priority than the standard link parser (200)
	))
}

type inlineParser struct{}

// Trigger returns the trigger characters for wikilinks.
func (p *inlineParser) Trigger() []byte {
	return []byte{'['}
}

// Parse recognizes `[[payload]]` and splits payload into an optional
// target document and optional target heading. The parser never fails on
// malformed input — a sequence that doesn't parse as a wikilink is simply
// not consumed, leaving it for later inline parsers (e.g. plain text).
func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()

	if len(line) < 4 || line[0] != '[' || line[1] != '[' {
		return nil
	}

	closePos := -1
	for i := 2; i < len(line)-1; i++ {
		if line[i] == ']' && line[i+1] == ']' {
			closePos = i
			break
		}
	}
	if closePos == -1 {
		return nil
	}

	payload := string(line[2:closePos])
	length := closePos + 2

	targetDoc, targetHeading, ok := splitPayload(payload)
	if !ok {
		return nil
	}

	_, segment := block.PeekLine()
	startOffset := segment.Start
	endOffset := startOffset + length

	node := &Node{
		TargetDoc:     targetDoc,
		TargetHeading: targetHeading,
		segment:       text.NewSegment(startOffset, endOffset),
	}
	block.Advance(length)
	return node
}

// splitPayload parses `doc`, `doc#heading`, or `#heading` out of the text
// between `[[` and `]]`. Whitespace inside target/heading is significant
// and preserved; only the outer whitespace around each part is trimmed.
// An empty payload, or a payload that is only whitespace, is not a valid
// wikilink.
func splitPayload(payload string) (targetDoc, targetHeading *string, ok bool) {
	if strings.TrimSpace(payload) == "" {
		return nil, nil, false
	}

	if hashPos := strings.Index(payload, "#"); hashPos != -1 {
		docPart := strings.TrimSpace(payload[:hashPos])
		headingPart := strings.TrimSpace(payload[hashPos+1:])
		if headingPart == "" {
			return nil, nil, false
		}
		if docPart == "" {
			return nil, &headingPart, true
		}
		return &docPart, &headingPart, true
	}

	docPart := strings.TrimSpace(payload)
	return &docPart, nil, true
}

// Kind is the goldmark node kind for wikilink nodes.
var Kind = ast.NewNodeKind("Wikilink")

// Node represents a wikilink in the goldmark AST.
type Node struct {
	ast.BaseInline
	TargetDoc     *string
	TargetHeading *string
	segment       text.Segment
}

// Segment returns the text segment of this wikilink.
func (n *Node) Segment() text.Segment {
	return n.segment
}

// Dump implements ast.Node.
func (n *Node) Dump(source []byte, level int) {
	kv := map[string]string{}
	if n.TargetDoc != nil {
		kv["TargetDoc"] = *n.TargetDoc
	}
	if n.TargetHeading != nil {
		kv["TargetHeading"] = *n.TargetHeading
	}
	ast.DumpHelper(n, source, level, kv, nil)
}

// Kind returns the node kind.
func (n *Node) Kind() ast.NodeKind {
	return Kind
}
