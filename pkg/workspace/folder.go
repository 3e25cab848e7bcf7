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

package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/path"
)

// Folder maps document paths to Documents within one workspace root. Every
// document's Root equals the folder's Root.
type Folder struct {
	Name      string
	Root      path.Path
	Documents map[string]*Document // keyed by Path.Key()

	// InlineRefs mirrors the workspace's inlineRefs config setting: when
	// true, resolver and diagnostics also treat InlineRef elements as
	// reference candidates, not just WikiLink.
	InlineRefs bool
}

// ScanOptions configures TryLoad's folder scan.
type ScanOptions struct {
	// Exclude is a set of glob patterns (matched against the path
	// relative to Root) skipped during the scan.
	Exclude []string
	// MaxFiles caps the number of documents loaded; remaining matches
	// are skipped and logged.
	MaxFiles int
}

// TryLoad recursively scans root for files matching the case-insensitive
// glob **/*.md, constructing a Document for each. Returns (nil, nil) —
// not an error — when root does not exist or contains no Markdown files;
// an empty folder is still a valid folder. Symlink cycles are avoided by
// tracking visited canonical directories.
func TryLoad(name string, root path.Path, opts ScanOptions, logger *log.Logger) (*Folder, error) {
	if _, err := os.Stat(root.Canonical()); err != nil {
		return nil, nil
	}

	folder := &Folder{Name: name, Root: root, Documents: map[string]*Document{}}
	visited := map[string]bool{}
	maxFiles := opts.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 10000
	}
	count := 0

	walkErr := filepath.WalkDir(root.Canonical(), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable path during folder scan", "path", p, "error", err)
			return nil
		}

		if d.IsDir() {
			real, err := filepath.EvalSymlinks(p)
			if err != nil {
				logger.Warn("skipping unresolvable directory", "path", p, "error", err)
				return filepath.SkipDir
			}
			if visited[real] {
				return filepath.SkipDir
			}
			visited[real] = true

			if matchesAny(opts.Exclude, root.Canonical(), p) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		if matchesAny(opts.Exclude, root.Canonical(), p) {
			return nil
		}
		if count >= maxFiles {
			logger.Warn("folder scan reached maxFiles, skipping remainder", "root", root, "maxFiles", maxFiles)
			return filepath.SkipAll
		}

		docPath, err := path.FromFilesystemPath(p)
		if err != nil {
			logger.Warn("skipping path that failed to canonicalize", "path", p, "error", err)
			return nil
		}
		doc, err := Load(root, docPath)
		if err != nil {
			logger.Warn("skipping unreadable document", "path", p, "error", err)
			return nil
		}
		folder.Documents[docPath.Key()] = doc
		count++
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return folder, nil
}

func matchesAny(patterns []string, root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// UpdateDocument returns a new Folder with doc inserted or replacing the
// existing document at the same path.
func (f *Folder) UpdateDocument(doc *Document) *Folder {
	next := f.clone()
	next.Documents[doc.Path.Key()] = doc
	return next
}

// RemoveDocument returns a new Folder with the document at p removed.
func (f *Folder) RemoveDocument(p path.Path) *Folder {
	next := f.clone()
	delete(next.Documents, p.Key())
	return next
}

func (f *Folder) clone() *Folder {
	docs := make(map[string]*Document, len(f.Documents))
	for k, v := range f.Documents {
		docs[k] = v
	}
	return &Folder{Name: f.Name, Root: f.Root, Documents: docs, InlineRefs: f.InlineRefs}
}

// SortedDocuments returns the folder's documents ordered by canonical
// path, used wherever basename-collision ties must break deterministically.
func (f *Folder) SortedDocuments() []*Document {
	docs := make([]*Document, 0, len(f.Documents))
	for _, d := range f.Documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Path.Canonical() < docs[j].Path.Canonical()
	})
	return docs
}

// FindByName returns every document in the folder whose note name matches
// name case-insensitively, in sorted canonical-path order.
func (f *Folder) FindByName(name string) []*Document {
	var matches []*Document
	for _, d := range f.SortedDocuments() {
		if strings.EqualFold(d.Name(), name) {
			matches = append(matches, d)
		}
	}
	return matches
}
