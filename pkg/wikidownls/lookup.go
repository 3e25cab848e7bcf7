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

package wikidownls

import (
	"strings"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/buffer"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/resolver"
	"github.com/wikidown/wikidown/pkg/state"
	"github.com/wikidown/wikidown/pkg/workspace"
)

// folderContaining returns the folder in st whose root contains docPath.
func folderContaining(st *state.State, docPath path.Path) (*workspace.Folder, bool) {
	for _, folder := range st.Folders {
		if docPath.Under(folder.Root) {
			return folder, true
		}
	}
	return nil, false
}

// lookupURI resolves an LSP document URI to its owning folder and document,
// both of which must already be tracked in st.
func lookupURI(st *state.State, uri string) (*workspace.Folder, *workspace.Document, bool) {
	docPath, err := path.FromURI(uri)
	if err != nil {
		return nil, nil, false
	}
	folder, ok := folderContaining(st, docPath)
	if !ok {
		return nil, nil, false
	}
	doc, ok := folder.Documents[docPath.Key()]
	if !ok {
		return nil, nil, false
	}
	return folder, doc, true
}

func (s *Server) lookup(uri string) (*workspace.Folder, *workspace.Document, bool) {
	return lookupURI(s.state, uri)
}

func (s *Server) folderContaining(docPath path.Path) (*workspace.Folder, bool) {
	return folderContaining(s.state, docPath)
}

func toBufferPosition(p lsp.Position) buffer.Position {
	return buffer.Position{Line: p.Line, Character: p.Character}
}

func toLSPRange(r buffer.Range) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: r.Start.Line, Character: r.Start.Character},
		End:   lsp.Position{Line: r.End.Line, Character: r.End.Character},
	}
}

func withinRange(pos buffer.Position, r buffer.Range) bool {
	after := pos.Line > r.Start.Line || (pos.Line == r.Start.Line && pos.Character >= r.Start.Character)
	before := pos.Line < r.End.Line || (pos.Line == r.End.Line && pos.Character < r.End.Character)
	return after && before
}

// findWikiLinkAt returns the WikiLink element whose range contains pos, if
// any. The search visits nested elements too, since a link inside a
// heading's scope still appears in the element forest under that heading.
func findWikiLinkAt(elements []ast.Element, pos buffer.Position) *ast.WikiLink {
	var found *ast.WikiLink
	ast.Walk(elements, func(e ast.Element) {
		if found != nil {
			return
		}
		if link, ok := e.(*ast.WikiLink); ok && withinRange(pos, link.Range) {
			found = link
		}
	})
	return found
}

// findInlineRefAt returns the InlineRef element whose range contains pos,
// if any. Only worth calling when the owning folder has InlineRefs
// enabled.
func findInlineRefAt(elements []ast.Element, pos buffer.Position) *ast.InlineRef {
	var found *ast.InlineRef
	ast.Walk(elements, func(e ast.Element) {
		if found != nil {
			return
		}
		if ref, ok := e.(*ast.InlineRef); ok && withinRange(pos, ref.Range) {
			found = ref
		}
	})
	return found
}

// resolveAt finds the reference at pos in doc and resolves it, trying a
// WikiLink first and, when folder has InlineRefs enabled, an InlineRef
// second. Used by definition and hover, which treat both reference kinds
// identically once resolved.
func resolveAt(doc *workspace.Document, folder *workspace.Folder, pos buffer.Position) (resolver.Result, bool) {
	if link := findWikiLinkAt(doc.Elements, pos); link != nil {
		return resolver.Resolve(doc, link, folder)
	}
	if folder.InlineRefs {
		if ref := findInlineRefAt(doc.Elements, pos); ref != nil {
			return resolver.ResolveInline(ref, folder)
		}
	}
	return resolver.Result{}, false
}

// wikilinkPartial returns the text between the nearest preceding "[[" on
// pos's line and pos itself, if pos sits inside an unterminated wikilink
// opener. Used to drive completion before the parser has a complete
// WikiLink element to work with.
func wikilinkPartial(doc *workspace.Document, pos lsp.Position) (string, bool) {
	full := doc.Text.Text()
	lineStart := doc.Text.PositionToOffset(buffer.Position{Line: pos.Line, Character: 0})
	cursor := doc.Text.PositionToOffset(toBufferPosition(pos))
	if cursor < lineStart || cursor > len(full) {
		return "", false
	}

	beforeCursor := full[lineStart:cursor]
	idx := strings.LastIndex(beforeCursor, "[[")
	if idx == -1 {
		return "", false
	}
	between := beforeCursor[idx+2:]
	if strings.Contains(between, "]]") {
		return "", false
	}
	return between, true
}
