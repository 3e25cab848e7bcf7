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
	"encoding/json"
	"fmt"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/resolver"
)

func hierarchicalSymbolSupport(caps lsp.ClientCapabilities) bool {
	return caps.TextDocument != nil &&
		caps.TextDocument.DocumentSymbol != nil &&
		caps.TextDocument.DocumentSymbol.HierarchicalDocumentSymbolSupport != nil &&
		*caps.TextDocument.DocumentSymbol.HierarchicalDocumentSymbolSupport
}

func buildDocumentSymbols(headings []*ast.Heading) []lsp.DocumentSymbol {
	out := make([]lsp.DocumentSymbol, 0, len(headings))
	for _, h := range headings {
		out = append(out, lsp.DocumentSymbol{
			Name:           h.Text,
			Kind:           lsp.SymbolKindString,
			Range:          toLSPRange(h.Scope),
			SelectionRange: toLSPRange(h.Range),
			Children:       buildDocumentSymbols(ast.Headings(h.Children)),
		})
	}
	return out
}

func buildSymbolInformation(elements []ast.Element, uri string) []lsp.SymbolInformation {
	var out []lsp.SymbolInformation
	ast.Walk(elements, func(e ast.Element) {
		h, ok := e.(*ast.Heading)
		if !ok {
			return
		}
		out = append(out, lsp.SymbolInformation{
			Name:     fmt.Sprintf("H%d: %s", h.Level, h.Text),
			Kind:     lsp.SymbolKindString,
			Location: lsp.Location{URI: uri, Range: toLSPRange(h.Range)},
		})
	})
	return out
}

func (s *Server) handleDocumentSymbol(params json.RawMessage) (any, error) {
	var p lsp.DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	_, doc, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.UnknownDocument, p.TextDocument.URI)
	}

	if hierarchicalSymbolSupport(s.state.ClientCaps) {
		return buildDocumentSymbols(ast.Headings(doc.Elements)), nil
	}
	return buildSymbolInformation(doc.Elements, doc.Path.URI()), nil
}

func (s *Server) handleCompletion(params json.RawMessage) (any, error) {
	var p lsp.CompletionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	folder, doc, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.UnknownDocument, p.TextDocument.URI)
	}

	partial, ok := wikilinkPartial(doc, p.Position)
	if !ok {
		return nil, nil
	}

	candidates := resolver.CompletionCandidates(doc, partial, folder)
	if len(candidates) == 0 {
		return nil, nil
	}

	fileKind := lsp.CompletionItemKindFile
	items := make([]lsp.CompletionItem, len(candidates))
	for i, c := range candidates {
		items[i] = lsp.CompletionItem{Label: c, Kind: &fileKind}
	}

	return &lsp.CompletionList{IsIncomplete: true, Items: items}, nil
}

func (s *Server) handleDefinition(params json.RawMessage) (any, error) {
	var p lsp.DefinitionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	folder, doc, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.UnknownDocument, p.TextDocument.URI)
	}

	result, ok := resolveAt(doc, folder, toBufferPosition(p.Position))
	if !ok {
		return nil, nil
	}

	targetRange := result.Document.Text.FullRange()
	if result.Heading != nil {
		targetRange = result.Heading.Scope
	}

	return lsp.Location{URI: result.Document.Path.URI(), Range: toLSPRange(targetRange)}, nil
}

func (s *Server) handleHover(params json.RawMessage) (any, error) {
	var p lsp.HoverParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	folder, doc, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.UnknownDocument, p.TextDocument.URI)
	}

	result, ok := resolveAt(doc, folder, toBufferPosition(p.Position))
	if !ok {
		return nil, nil
	}

	return &lsp.Hover{
		Contents: lsp.MarkupContent{Kind: lsp.MarkupKindMarkdown, Value: result.HoverSnippet()},
	}, nil
}
