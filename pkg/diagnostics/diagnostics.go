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

// Package diagnostics computes, per folder, the diagnostics to report for
// every document: broken wiki-link references, ambiguous reference
// targets, and duplicate headings.
package diagnostics

import (
	"strings"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/resolver"
	"github.com/wikidown/wikidown/pkg/workspace"
)

// ForDocument is one document's computed diagnostics, keyed separately so
// the state manager can diff by path.
type ForDocument struct {
	Path  path.Path
	Items []lsp.Diagnostic
}

// Compute returns diagnostics for every document in folder, keyed by
// path.Path.Key(), including empty slices for documents with no issues —
// the state manager relies on every document being present so it can
// detect and publish cleared diagnostics.
func Compute(folder *workspace.Folder) map[string]ForDocument {
	out := make(map[string]ForDocument, len(folder.Documents))
	for key, doc := range folder.Documents {
		out[key] = ForDocument{Path: doc.Path, Items: computeDocument(doc, folder)}
	}
	return out
}

func computeDocument(doc *workspace.Document, folder *workspace.Folder) []lsp.Diagnostic {
	items := []lsp.Diagnostic{}

	ast.Walk(doc.Elements, func(e ast.Element) {
		switch v := e.(type) {
		case *ast.WikiLink:
			result, resolved := resolver.Resolve(doc, v, folder)
			if !resolved {
				items = append(items, brokenReferenceDiagnostic(v))
				return
			}
			if result.Ambiguous {
				items = append(items, ambiguousReferenceDiagnostic(v))
			}
		case *ast.InlineRef:
			if !folder.InlineRefs || resolver.IsExternal(v.Target) {
				return
			}
			result, resolved := resolver.ResolveInline(v, folder)
			if !resolved {
				items = append(items, brokenInlineReferenceDiagnostic(v))
				return
			}
			if result.Ambiguous {
				items = append(items, ambiguousInlineReferenceDiagnostic(v))
			}
		}
	})

	items = append(items, duplicateHeadingDiagnostics(doc.Elements)...)

	return items
}

func brokenReferenceDiagnostic(link *ast.WikiLink) lsp.Diagnostic {
	severity := lsp.DiagnosticSeverityWarning
	return lsp.Diagnostic{
		Range:    toLSPRange(link.Range),
		Severity: &severity,
		Message:  "broken reference: " + linkDescription(link),
		Source:   strPtr("wikidown"),
	}
}

func ambiguousReferenceDiagnostic(link *ast.WikiLink) lsp.Diagnostic {
	severity := lsp.DiagnosticSeverityWarning
	return lsp.Diagnostic{
		Range:    toLSPRange(link.Range),
		Severity: &severity,
		Message:  "ambiguous reference target: multiple notes named " + *link.TargetDoc,
		Source:   strPtr("wikidown"),
	}
}

func brokenInlineReferenceDiagnostic(ref *ast.InlineRef) lsp.Diagnostic {
	severity := lsp.DiagnosticSeverityWarning
	return lsp.Diagnostic{
		Range:    toLSPRange(ref.Range),
		Severity: &severity,
		Message:  "broken reference: " + ref.Target,
		Source:   strPtr("wikidown"),
	}
}

func ambiguousInlineReferenceDiagnostic(ref *ast.InlineRef) lsp.Diagnostic {
	severity := lsp.DiagnosticSeverityWarning
	return lsp.Diagnostic{
		Range:    toLSPRange(ref.Range),
		Severity: &severity,
		Message:  "ambiguous reference target: multiple notes named " + ref.Target,
		Source:   strPtr("wikidown"),
	}
}

// duplicateHeadingDiagnostics reports, for each heading whose trimmed
// case-insensitive text duplicates an earlier heading anywhere in the
// document, an informational diagnostic at the later heading's range.
// This never affects resolution: the resolver always picks the first.
func duplicateHeadingDiagnostics(elements []ast.Element) []lsp.Diagnostic {
	seen := map[string]bool{}
	var out []lsp.Diagnostic
	ast.Walk(elements, func(e ast.Element) {
		h, ok := e.(*ast.Heading)
		if !ok {
			return
		}
		key := strings.TrimSpace(strings.ToLower(h.Text))
		if seen[key] {
			severity := lsp.DiagnosticSeverityInformation
			out = append(out, lsp.Diagnostic{
				Range:    toLSPRange(h.Range),
				Severity: &severity,
				Message:  "duplicate heading: " + h.Text,
				Source:   strPtr("wikidown"),
			})
			return
		}
		seen[key] = true
	})
	return out
}

func linkDescription(link *ast.WikiLink) string {
	switch {
	case link.TargetDoc != nil && link.TargetHeading != nil:
		return *link.TargetDoc + "#" + *link.TargetHeading
	case link.TargetDoc != nil:
		return *link.TargetDoc
	case link.TargetHeading != nil:
		return "#" + *link.TargetHeading
	default:
		return ""
	}
}

func toLSPRange(r ast.Range) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: r.Start.Line, Character: r.Start.Character},
		End:   lsp.Position{Line: r.End.Line, Character: r.End.Character},
	}
}

func strPtr(s string) *string { return &s }
