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

// Package resolver resolves WikiLink elements to target documents and
// headings, and enumerates completion candidates for partially-typed wiki
// links. Definition and hover reuse Resolve directly.
package resolver

import (
	"sort"
	"strings"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/workspace"
)

// externalSchemes are the link destinations ResolveInline treats as
// pointing outside the workspace, never as a broken or ambiguous local
// reference.
var externalSchemes = []string{"http://", "https://", "mailto:", "tel:"}

// IsExternal reports whether target is an external link destination
// rather than a path to another note in the workspace.
func IsExternal(target string) bool {
	lower := strings.ToLower(target)
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// Result is the outcome of resolving a WikiLink.
type Result struct {
	Document  *workspace.Document
	Heading   *ast.Heading // nil when the link names no heading
	Ambiguous bool         // true when TargetDoc matched more than one note
}

// Resolve looks up link's target within folder, relative to source (used
// when link has no TargetDoc, i.e. `[[#heading]]`). Returns ok=false when
// the link is broken: no document or heading matches.
//
// Resolution is idempotent: given the same link and folder contents, it
// always returns the same result, since it performs no mutation and
// ambiguity ties always break the same way (sorted canonical-path order).
func Resolve(source *workspace.Document, link *ast.WikiLink, folder *workspace.Folder) (Result, bool) {
	var target *workspace.Document
	var ambiguous bool

	if link.TargetDoc == nil {
		target = source
	} else {
		matches := folder.FindByName(*link.TargetDoc)
		if len(matches) == 0 {
			return Result{}, false
		}
		target = matches[0]
		ambiguous = len(matches) > 1
	}

	if link.TargetHeading == nil {
		return Result{Document: target, Ambiguous: ambiguous}, true
	}

	heading := findHeading(target.Elements, *link.TargetHeading)
	if heading == nil {
		return Result{}, false
	}
	return Result{Document: target, Heading: heading, Ambiguous: ambiguous}, true
}

// ResolveInline resolves an InlineRef the same way Resolve resolves a
// WikiLink: ref.Target is treated as a note name (its ".md" extension and
// any "#heading" fragment are stripped) and looked up in folder. Returns
// ok=false both when ref points outside the workspace (IsExternal) and
// when it names no matching document — callers that need to tell those
// apart should check IsExternal first.
func ResolveInline(ref *ast.InlineRef, folder *workspace.Folder) (Result, bool) {
	if IsExternal(ref.Target) {
		return Result{}, false
	}

	target := ref.Target
	var headingName string
	if hashPos := strings.Index(target, "#"); hashPos != -1 {
		headingName = target[hashPos+1:]
		target = target[:hashPos]
	}
	target = strings.TrimSuffix(strings.TrimPrefix(target, "./"), ".md")
	if target == "" {
		return Result{}, false
	}

	matches := folder.FindByName(target)
	if len(matches) == 0 {
		return Result{}, false
	}
	doc := matches[0]
	ambiguous := len(matches) > 1

	if headingName == "" {
		return Result{Document: doc, Ambiguous: ambiguous}, true
	}
	heading := findHeading(doc.Elements, headingName)
	if heading == nil {
		return Result{}, false
	}
	return Result{Document: doc, Heading: heading, Ambiguous: ambiguous}, true
}

// findHeading returns the first heading, in pre-order, whose text equals
// name case-insensitively after trimming both sides.
func findHeading(elements []ast.Element, name string) *ast.Heading {
	want := strings.TrimSpace(strings.ToLower(name))
	var found *ast.Heading
	ast.Walk(elements, func(e ast.Element) {
		if found != nil {
			return
		}
		if h, ok := e.(*ast.Heading); ok {
			if strings.TrimSpace(strings.ToLower(h.Text)) == want {
				found = h
			}
		}
	})
	return found
}

// CompletionCandidates enumerates candidates for a partially-typed wiki
// link payload (the text between `[[` and the cursor, not including the
// brackets). If partial contains `#`, candidates are headings of the
// already-resolved target document (the part before `#`, or source
// itself when empty); otherwise candidates are note names in folder.
// Matches are case-insensitive substring matches, sorted by name.
func CompletionCandidates(source *workspace.Document, partial string, folder *workspace.Folder) []string {
	if hashPos := strings.Index(partial, "#"); hashPos != -1 {
		docPart := strings.TrimSpace(partial[:hashPos])
		headingPrefix := strings.TrimSpace(partial[hashPos+1:])

		var target *workspace.Document
		if docPart == "" {
			target = source
		} else {
			matches := folder.FindByName(docPart)
			if len(matches) == 0 {
				return nil
			}
			target = matches[0]
		}

		return matchingHeadings(target.Elements, headingPrefix)
	}

	return matchingNoteNames(folder, partial)
}

func matchingNoteNames(folder *workspace.Folder, partial string) []string {
	want := strings.ToLower(partial)
	var names []string
	seen := map[string]bool{}
	for _, d := range folder.SortedDocuments() {
		name := d.Name()
		if !strings.Contains(strings.ToLower(name), want) {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func matchingHeadings(elements []ast.Element, prefix string) []string {
	want := strings.ToLower(prefix)
	var names []string
	ast.Walk(elements, func(e ast.Element) {
		h, ok := e.(*ast.Heading)
		if !ok {
			return
		}
		if strings.Contains(strings.ToLower(h.Text), want) {
			names = append(names, h.Text)
		}
	})
	sort.Strings(names)
	return names
}
