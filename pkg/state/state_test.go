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

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/workspace"
)

func mustWrite(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func loadFolder(t *testing.T, dir string) *workspace.Folder {
	t.Helper()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	folder, err := workspace.TryLoad("notes", root, workspace.ScanOptions{}, log.New(os.Stderr, log.Error))
	require.NoError(t, err)
	require.NotNil(t, folder)
	return folder
}

func TestNew_EmptyStateHasRevisionZero(t *testing.T) {
	s := New(lsp.ClientCapabilities{})
	assert.Equal(t, 0, s.Revision)
	assert.Empty(t, s.Folders)
	assert.Empty(t, s.LastPublished)
}

func TestWithFolder_LeavesReceiverUnchanged(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	folder := loadFolder(t, dir)
	root := folder.Root

	s0 := New(lsp.ClientCapabilities{})
	s1 := s0.WithFolder(root, folder)

	assert.Empty(t, s0.Folders)
	require.Len(t, s1.Folders, 1)
	assert.Same(t, folder, s1.Folders[root.Key()])
}

func TestWithoutFolder_RemovesFolderAndItsPublishRecord(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	folder := loadFolder(t, dir)
	root := folder.Root

	s := New(lsp.ClientCapabilities{}).WithFolder(root, folder)
	s, _ = Update(s)
	require.NotEmpty(t, s.LastPublished)

	s = s.WithoutFolder(root)
	assert.Empty(t, s.Folders)
	assert.Empty(t, s.LastPublished)
}

func TestUpdate_FirstCallPublishesEveryDocument(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	mustWrite(t, dir, "b.md", "[[missing]]")
	folder := loadFolder(t, dir)

	s := New(lsp.ClientCapabilities{}).WithFolder(folder.Root, folder)
	committed, publishes := Update(s)

	assert.Equal(t, 1, committed.Revision)
	assert.Len(t, publishes, 2)
}

func TestUpdate_RevisionIncreasesMonotonically(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	folder := loadFolder(t, dir)
	s := New(lsp.ClientCapabilities{}).WithFolder(folder.Root, folder)

	s1, _ := Update(s)
	s2, _ := Update(s1)
	s3, _ := Update(s2)

	assert.Equal(t, 1, s1.Revision)
	assert.Equal(t, 2, s2.Revision)
	assert.Equal(t, 3, s3.Revision)
}

func TestUpdate_UnchangedFolderProducesNoPublishes(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	folder := loadFolder(t, dir)
	s := New(lsp.ClientCapabilities{}).WithFolder(folder.Root, folder)

	s, _ = Update(s)
	_, publishes := Update(s)

	assert.Empty(t, publishes)
}

func TestUpdate_ChangedDiagnosticsRepublishesWholeFolder(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	mustWrite(t, dir, "b.md", "# World\n")
	folder := loadFolder(t, dir)
	s := New(lsp.ClientCapabilities{}).WithFolder(folder.Root, folder)
	s, _ = Update(s)

	mustWrite(t, dir, "a.md", "[[missing]]")
	folder2 := loadFolder(t, dir)
	s = s.WithFolder(folder2.Root, folder2)

	committed, publishes := Update(s)
	assert.Equal(t, 2, committed.Revision)
	// Both a.md and b.md are republished: the diff is per-folder, not per-path.
	assert.Len(t, publishes, 2)
}

func TestUpdate_DoesNotMutateInputState(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "[[missing]]")
	folder := loadFolder(t, dir)
	s := New(lsp.ClientCapabilities{}).WithFolder(folder.Root, folder)

	committed, _ := Update(s)
	assert.Equal(t, 0, s.Revision)
	assert.Empty(t, s.LastPublished)
	assert.NotEmpty(t, committed.LastPublished)
}
