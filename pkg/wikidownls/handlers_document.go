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

	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/workspace"
)

func (s *Server) handleDidOpen(params json.RawMessage) error {
	var p lsp.DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	docPath, err := path.FromURI(p.TextDocument.URI)
	if err != nil {
		s.logger.Error("didOpen: bad document uri", "uri", p.TextDocument.URI, "error", err)
		return err
	}
	folder, ok := s.folderContaining(docPath)
	if !ok {
		s.logger.Warn("didOpen: no workspace folder owns this document", "uri", p.TextDocument.URI)
		return nil
	}

	doc, err := workspace.FromOpen(folder.Root, p.TextDocument)
	if err != nil {
		s.logger.Error("didOpen: failed to construct document", "uri", p.TextDocument.URI, "error", err)
		return err
	}

	s.commit(s.state.WithFolder(folder.Root, folder.UpdateDocument(doc)))
	return nil
}

func (s *Server) handleDidChange(params json.RawMessage) error {
	var p lsp.DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	folder, doc, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		s.logger.Warn("didChange: unknown document", "uri", p.TextDocument.URI)
		return nil
	}

	newDoc, err := doc.ApplyChange(p.ContentChanges)
	if err != nil {
		s.logger.Error("didChange: failed to apply content changes", "uri", p.TextDocument.URI, "error", err)
		return err
	}

	s.commit(s.state.WithFolder(folder.Root, folder.UpdateDocument(newDoc)))
	return nil
}

// handleDidClose reloads the document from disk, on the assumption that
// any unsaved edits the buffer held are now gone; if the file no longer
// exists on disk it is removed from the folder instead (§6).
func (s *Server) handleDidClose(params json.RawMessage) error {
	var p lsp.DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	folder, _, ok := s.lookup(p.TextDocument.URI)
	if !ok {
		s.logger.Warn("didClose: unknown document", "uri", p.TextDocument.URI)
		return nil
	}

	docPath, err := path.FromURI(p.TextDocument.URI)
	if err != nil {
		return err
	}

	var newFolder *workspace.Folder
	reloaded, err := workspace.Load(folder.Root, docPath)
	if err != nil {
		s.logger.Debug("didClose: document no longer readable, removing", "uri", p.TextDocument.URI, "error", err)
		newFolder = folder.RemoveDocument(docPath)
	} else {
		newFolder = folder.UpdateDocument(reloaded)
	}

	s.commit(s.state.WithFolder(folder.Root, newFolder))
	return nil
}
