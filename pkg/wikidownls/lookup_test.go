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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidown/wikidown/pkg/buffer"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/state"
	"github.com/wikidown/wikidown/pkg/workspace"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, log.Error)
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	full := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func loadedState(t *testing.T, root path.Path, folder *workspace.Folder) *state.State {
	t.Helper()
	return state.New(lsp.ClientCapabilities{}).WithFolder(root, folder)
}

func TestLookupURI(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.md", "# A\n\n[[b]]\n")
	writeTempFile(t, dir, "b.md", "# B\n")

	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)

	folder, err := workspace.TryLoad("root", root, workspace.ScanOptions{}, testLogger())
	require.NoError(t, err)
	require.NotNil(t, folder)

	st := loadedState(t, root, folder)

	aPath, err := path.FromFilesystemPath(filepath.Join(dir, "a.md"))
	require.NoError(t, err)

	gotFolder, gotDoc, ok := lookupURI(st, aPath.URI())
	require.True(t, ok)
	assert.Equal(t, folder.Name, gotFolder.Name)
	assert.Equal(t, "a", gotDoc.Name())

	_, _, ok = lookupURI(st, "file:///not/tracked.md")
	assert.False(t, ok)
}

func TestFolderContaining(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	folder := &workspace.Folder{Name: "root", Root: root, Documents: map[string]*workspace.Document{}}
	st := loadedState(t, root, folder)

	inside, err := path.FromFilesystemPath(filepath.Join(dir, "note.md"))
	require.NoError(t, err)
	got, ok := folderContaining(st, inside)
	require.True(t, ok)
	assert.Equal(t, "root", got.Name)

	outside, err := path.FromFilesystemPath(filepath.Join(t.TempDir(), "note.md"))
	require.NoError(t, err)
	_, ok = folderContaining(st, outside)
	assert.False(t, ok)
}

func TestWithinRange(t *testing.T) {
	r := buffer.Range{
		Start: buffer.Position{Line: 1, Character: 2},
		End:   buffer.Position{Line: 1, Character: 8},
	}

	assert.True(t, withinRange(buffer.Position{Line: 1, Character: 2}, r))
	assert.True(t, withinRange(buffer.Position{Line: 1, Character: 7}, r))
	assert.False(t, withinRange(buffer.Position{Line: 1, Character: 8}, r))
	assert.False(t, withinRange(buffer.Position{Line: 1, Character: 1}, r))
	assert.False(t, withinRange(buffer.Position{Line: 0, Character: 5}, r))
}

func TestWikilinkPartial(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.md", "hello [[wor")
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	docPath, err := path.FromFilesystemPath(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	doc, err := workspace.Load(root, docPath)
	require.NoError(t, err)

	partial, ok := wikilinkPartial(doc, lsp.Position{Line: 0, Character: 11})
	require.True(t, ok)
	assert.Equal(t, "wor", partial)

	_, ok = wikilinkPartial(doc, lsp.Position{Line: 0, Character: 3})
	assert.False(t, ok)
}

func TestWikilinkPartialAlreadyClosed(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.md", "see [[b]] for more")
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	docPath, err := path.FromFilesystemPath(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	doc, err := workspace.Load(root, docPath)
	require.NoError(t, err)

	_, ok := wikilinkPartial(doc, lsp.Position{Line: 0, Character: 19})
	assert.False(t, ok)
}

func TestFindWikiLinkAt(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.md", "see [[b]] here\n")
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	docPath, err := path.FromFilesystemPath(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	doc, err := workspace.Load(root, docPath)
	require.NoError(t, err)

	link := findWikiLinkAt(doc.Elements, buffer.Position{Line: 0, Character: 6})
	require.NotNil(t, link)
	require.NotNil(t, link.TargetDoc)
	assert.Equal(t, "b", *link.TargetDoc)

	assert.Nil(t, findWikiLinkAt(doc.Elements, buffer.Position{Line: 0, Character: 0}))
}
