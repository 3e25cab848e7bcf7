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

// Package workspace holds the Document and Folder types: a document's text
// and derived element tree, and a folder's map of documents under one
// workspace root.
package workspace

import (
	"fmt"
	"os"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/buffer"
	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/markdown"
	"github.com/wikidown/wikidown/pkg/path"
)

// Document is one Markdown note: its identity, its text, and the element
// tree derived from that text. Elements are regenerated whenever the text
// changes; they are never mutated independently of the text.
type Document struct {
	Root     path.Path
	Path     path.Path
	Text     *buffer.Buffer
	Elements []ast.Element
}

// Load reads path's contents from disk and parses it. Fails with IoError
// if the file cannot be read, and with BadPath if path does not lie under
// root.
func Load(root, docPath path.Path) (*Document, error) {
	if !docPath.Under(root) {
		return nil, fmt.Errorf("%w: %s is not under %s", path.BadPath, docPath, root)
	}
	content, err := os.ReadFile(docPath.Canonical())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.IoError, err)
	}
	return newDocument(root, docPath, string(content))
}

// FromOpen constructs a Document from an LSP TextDocumentItem, as supplied
// by textDocument/didOpen (the text is given in the message, not read from
// disk).
func FromOpen(root path.Path, item lsp.TextDocumentItem) (*Document, error) {
	docPath, err := path.FromURI(item.URI)
	if err != nil {
		return nil, err
	}
	if !docPath.Under(root) {
		return nil, fmt.Errorf("%w: %s is not under %s", path.BadPath, docPath, root)
	}
	return newDocument(root, docPath, item.Text)
}

func newDocument(root, docPath path.Path, text string) (*Document, error) {
	buf := buffer.New(text)
	return &Document{
		Root:     root,
		Path:     docPath,
		Text:     buf,
		Elements: markdown.Parse(buf),
	}, nil
}

// ApplyChange applies LSP content changes to the document's buffer and
// re-parses its elements, returning a new Document. The original is left
// untouched.
func (d *Document) ApplyChange(changes []lsp.TextDocumentContentChangeEvent) (*Document, error) {
	next := d.Text
	for _, change := range changes {
		if change.Range == nil {
			// A full-document replacement, sent when the client doesn't
			// negotiate incremental sync for this document.
			next = buffer.New(change.Text)
			continue
		}
		edit := buffer.Edit{
			Range: buffer.Range{
				Start: buffer.Position{Line: change.Range.Start.Line, Character: change.Range.Start.Character},
				End:   buffer.Position{Line: change.Range.End.Line, Character: change.Range.End.Character},
			},
			New: change.Text,
		}
		updated, err := next.ApplyEdits([]buffer.Edit{edit})
		if err != nil {
			return nil, err
		}
		next = updated
	}

	return &Document{
		Root:     d.Root,
		Path:     d.Path,
		Text:     next,
		Elements: markdown.Parse(next),
	}, nil
}

// Name returns the document's note name: its file basename without the
// .md extension.
func (d *Document) Name() string {
	return d.Path.Base()
}
