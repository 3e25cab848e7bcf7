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

// Package state holds the server's sole mutable state cell: client
// capabilities, the set of open workspace folders, a monotonic revision,
// and the diagnostics most recently published per folder, used to diff
// and clear. There is exactly one State value alive at a time, owned by
// the request-handler task; no locking is used or required.
package state

import (
	"reflect"

	"github.com/wikidown/wikidown/pkg/diagnostics"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/publish"
	"github.com/wikidown/wikidown/pkg/workspace"
)

// State is the process's single mutable state cell.
type State struct {
	ClientCaps lsp.ClientCapabilities
	// Folders is keyed by the folder root's path.Key().
	Folders map[string]*workspace.Folder
	Revision int
	// LastPublished records, per folder root key, the diagnostics most
	// recently sent to the client, keyed by document path.Key().
	LastPublished map[string]map[string]diagnostics.ForDocument
}

// New returns the initial state: no folders, revision 0, nothing
// published yet.
func New(caps lsp.ClientCapabilities) *State {
	return &State{
		ClientCaps:    caps,
		Folders:       map[string]*workspace.Folder{},
		LastPublished: map[string]map[string]diagnostics.ForDocument{},
	}
}

// WithFolder returns a new State with folder inserted or replacing the
// folder at the same root. The receiver is left unchanged.
func (s *State) WithFolder(root path.Path, folder *workspace.Folder) *State {
	next := s.clone()
	next.Folders[root.Key()] = folder
	return next
}

// WithoutFolder returns a new State with the folder at root removed.
func (s *State) WithoutFolder(root path.Path) *State {
	next := s.clone()
	delete(next.Folders, root.Key())
	delete(next.LastPublished, root.Key())
	return next
}

func (s *State) clone() *State {
	folders := make(map[string]*workspace.Folder, len(s.Folders))
	for k, v := range s.Folders {
		folders[k] = v
	}
	lastPublished := make(map[string]map[string]diagnostics.ForDocument, len(s.LastPublished))
	for k, v := range s.LastPublished {
		lastPublished[k] = v
	}
	return &State{
		ClientCaps:    s.ClientCaps,
		Folders:       folders,
		Revision:      s.Revision,
		LastPublished: lastPublished,
	}
}

// Update computes diagnostics for every folder in next, diffs them
// against next's LastPublished record, and returns the committed state
// (incremented revision, replaced LastPublished) along with every publish
// that must be sent to the client. Folders whose diagnostic map is
// unchanged produce no publishes. Computing the new state and the publish
// list never partially completes: the caller either gets both or,
// conceptually, neither — there is no path that mutates LastPublished
// without returning the corresponding publishes.
func Update(next *State) (*State, []publish.Publish) {
	committed := next.clone()
	var publishes []publish.Publish

	for rootKey, folder := range next.Folders {
		newFolderDiag := diagnostics.Compute(folder)
		if foldersEqual(next.LastPublished[rootKey], newFolderDiag) {
			continue
		}
		for _, entry := range newFolderDiag {
			publishes = append(publishes, publish.Publish{
				URI:         entry.Path.URI(),
				Diagnostics: entry.Items,
			})
		}
		committed.LastPublished[rootKey] = newFolderDiag
	}

	committed.Revision = next.Revision + 1
	return committed, publishes
}

func foldersEqual(a, b map[string]diagnostics.ForDocument) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(av.Items, bv.Items) {
			return false
		}
	}
	return true
}
