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

func (s *Server) handleDidChangeWorkspaceFolders(params json.RawMessage) error {
	var p lsp.DidChangeWorkspaceFoldersParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	next := s.state
	for _, removed := range p.Event.Removed {
		root, err := path.FromURI(removed.Uri)
		if err != nil {
			s.logger.Warn("didChangeWorkspaceFolders: bad removed folder uri", "uri", removed.Uri, "error", err)
			continue
		}
		next = next.WithoutFolder(root)
	}
	for _, added := range p.Event.Added {
		root, err := path.FromURI(added.Uri)
		if err != nil {
			s.logger.Warn("didChangeWorkspaceFolders: bad added folder uri", "uri", added.Uri, "error", err)
			continue
		}
		folder := loadFolder(added.Name, root, s.logger)
		if folder == nil {
			continue
		}
		next = next.WithFolder(root, folder)
	}

	s.commit(next)
	return nil
}

func (s *Server) handleDidCreateFiles(params json.RawMessage) error {
	var p lsp.CreateFilesParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	next := s.state
	for _, f := range p.Files {
		docPath, err := path.FromURI(f.URI)
		if err != nil {
			s.logger.Warn("didCreateFiles: bad path", "uri", f.URI, "error", err)
			continue
		}
		folder, ok := folderContaining(next, docPath)
		if !ok {
			s.logger.Warn("didCreateFiles: no workspace folder owns this file", "uri", f.URI)
			continue
		}
		doc, err := workspace.Load(folder.Root, docPath)
		if err != nil {
			s.logger.Warn("didCreateFiles: failed to read new file, skipping", "uri", f.URI, "error", err)
			continue
		}
		next = next.WithFolder(folder.Root, folder.UpdateDocument(doc))
	}

	s.commit(next)
	return nil
}

func (s *Server) handleDidDeleteFiles(params json.RawMessage) error {
	var p lsp.DeleteFilesParams
	if err := json.Unmarshal(params, &p); err != nil {
		return err
	}

	next := s.state
	for _, f := range p.Files {
		docPath, err := path.FromURI(f.URI)
		if err != nil {
			s.logger.Warn("didDeleteFiles: bad path", "uri", f.URI, "error", err)
			continue
		}
		folder, ok := folderContaining(next, docPath)
		if !ok {
			continue
		}
		next = next.WithFolder(folder.Root, folder.RemoveDocument(docPath))
	}

	s.commit(next)
	return nil
}

