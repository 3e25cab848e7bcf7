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

// Package buffer holds document text and maps between LSP line/UTF-16-
// character positions and byte offsets, applying incremental edits the way
// textDocument/didChange delivers them.
package buffer

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// InvalidEdit is returned when the edits passed to ApplyEdits are not
// sorted by start position or overlap — a contract violation by the
// caller, which the LSP machinery guarantees never happens in practice.
var InvalidEdit = errors.New("invalid edit")

// Position is a zero-based line and UTF-16 code-unit offset within that
// line, matching the LSP wire representation.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) span of Positions.
type Range struct {
	Start Position
	End   Position
}

// Edit replaces the text in Range with New.
type Edit struct {
	Range Range
	New   string
}

// Buffer holds the full text of one document plus a line-start offset
// table, rebuilt whenever the text changes.
type Buffer struct {
	text       string
	lineStarts []int // byte offset of the first byte of each line
}

// New constructs a Buffer from a full string, building the line-start
// table in one pass.
func New(text string) *Buffer {
	return &Buffer{text: text, lineStarts: computeLineStarts(text)}
}

func computeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Text returns the buffer's full current contents.
func (b *Buffer) Text() string {
	return b.text
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// lineBytes returns the byte range [start, end) of line (exclusive of its
// trailing newline).
func (b *Buffer) lineBytes(line int) (int, int) {
	start := b.lineStarts[line]
	var end int
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1]
		// Exclude the trailing newline (and a preceding \r, if present).
		if end > start && b.text[end-1] == '\n' {
			end--
		}
		if end > start && b.text[end-1] == '\r' {
			end--
		}
	} else {
		end = len(b.text)
	}
	return start, end
}

// PositionToOffset returns the byte offset for a line/UTF-16-character
// position, clamping out-of-range positions to EOF.
func (b *Buffer) PositionToOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(b.lineStarts) {
		return len(b.text)
	}
	lineStart, lineEnd := b.lineBytes(pos.Line)
	if pos.Character <= 0 {
		return lineStart
	}

	line := b.text[lineStart:lineEnd]
	unitsRemaining := pos.Character
	byteOffset := 0
	for byteOffset < len(line) {
		r, size := utf8.DecodeRuneInString(line[byteOffset:])
		units := 1
		if r > 0xFFFF {
			units = 2
		}
		if unitsRemaining < units {
			break
		}
		unitsRemaining -= units
		byteOffset += size
	}
	return lineStart + byteOffset
}

// OffsetToPosition returns the line/UTF-16-character position for a byte
// offset, clamping out-of-range offsets to EOF.
func (b *Buffer) OffsetToPosition(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}

	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	lineStart, _ := b.lineBytes(line)
	character := 0
	byteOffset := lineStart
	for byteOffset < offset {
		r, size := utf8.DecodeRuneInString(b.text[byteOffset:])
		if r > 0xFFFF {
			character += 2
		} else {
			character++
		}
		byteOffset += size
	}
	return Position{Line: line, Character: character}
}

// FullRange returns the range spanning the entire buffer.
func (b *Buffer) FullRange() Range {
	lastLine := len(b.lineStarts) - 1
	_, lastLineEnd := b.lineBytes(lastLine)
	return Range{
		Start: Position{Line: 0, Character: 0},
		End:   b.OffsetToPosition(lastLineEnd),
	}
}

// ApplyEdits applies edits in the order given, returning a new Buffer with
// the result. Edits are assumed sorted by start position and
// non-overlapping, per the LSP contract; violating that is a programmer
// error reported as InvalidEdit. Every edit's range refers to the
// receiver's original text; all ranges are resolved against it first and
// the result is spliced together in one left-to-right pass, so no edit's
// offsets are shifted by an earlier one.
func (b *Buffer) ApplyEdits(edits []Edit) (*Buffer, error) {
	if len(edits) == 0 {
		return New(b.text), nil
	}

	type resolved struct {
		startOffset int
		endOffset   int
		new         string
	}
	resolvedEdits := make([]resolved, len(edits))
	for i, e := range edits {
		resolvedEdits[i] = resolved{
			startOffset: b.PositionToOffset(e.Range.Start),
			endOffset:   b.PositionToOffset(e.Range.End),
			new:         e.New,
		}
	}

	for i := 1; i < len(resolvedEdits); i++ {
		if resolvedEdits[i].startOffset < resolvedEdits[i-1].endOffset {
			return nil, fmt.Errorf("%w: edit %d overlaps or precedes edit %d", InvalidEdit, i, i-1)
		}
	}

	var out []byte
	out = append(out, b.text[:resolvedEdits[0].startOffset]...)
	for i, e := range resolvedEdits {
		out = append(out, e.new...)
		if i+1 < len(resolvedEdits) {
			out = append(out, b.text[e.endOffset:resolvedEdits[i+1].startOffset]...)
		}
	}
	out = append(out, b.text[resolvedEdits[len(resolvedEdits)-1].endOffset:]...)

	return New(string(out)), nil
}
