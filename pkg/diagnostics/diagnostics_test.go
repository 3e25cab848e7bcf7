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

package diagnostics

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

func TestCompute_EveryDocumentIncludingEmpty(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	folder := loadFolder(t, dir)

	result := Compute(folder)
	doc := folder.FindByName("a")[0]
	entry, ok := result[doc.Path.Key()]
	require.True(t, ok)
	assert.NotNil(t, entry.Items)
	assert.Empty(t, entry.Items)
}

func TestCompute_BrokenReferenceIsWarningAtLinkRange(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "b.md", "[[a]]")
	folder := loadFolder(t, dir)

	result := Compute(folder)
	doc := folder.FindByName("b")[0]
	items := result[doc.Path.Key()].Items
	require.Len(t, items, 1)
	assert.Equal(t, lsp.DiagnosticSeverityWarning, *items[0].Severity)
	assert.Equal(t, 0, items[0].Range.Start.Line)
	assert.Equal(t, 0, items[0].Range.Start.Character)
	assert.Equal(t, 5, items[0].Range.End.Character)
}

func TestCompute_ClearedAfterFixByEdit(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "b.md", "[[a]]")
	folder := loadFolder(t, dir)
	before := Compute(folder)
	doc := folder.FindByName("b")[0]
	require.NotEmpty(t, before[doc.Path.Key()].Items)

	mustWrite(t, dir, "a.md", "# Hello\n")
	folder = loadFolder(t, dir)
	after := Compute(folder)
	doc = folder.FindByName("b")[0]
	assert.Empty(t, after[doc.Path.Key()].Items)
}

func TestCompute_AmbiguousReferenceOncePerLink(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	mustWrite(t, dir, "note.md", "# Top\n")
	mustWrite(t, filepath.Join(dir, "sub"), "note.md", "# Sub\n")
	mustWrite(t, dir, "c.md", "[[note]]")
	folder := loadFolder(t, dir)

	result := Compute(folder)
	doc := folder.FindByName("c")[0]
	items := result[doc.Path.Key()].Items
	require.Len(t, items, 1)
	assert.Equal(t, lsp.DiagnosticSeverityWarning, *items[0].Severity)
}

func TestCompute_DuplicateHeadingIsInformational(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# One\n## Dup\n## Dup\n")
	folder := loadFolder(t, dir)

	result := Compute(folder)
	doc := folder.FindByName("a")[0]
	items := result[doc.Path.Key()].Items
	require.Len(t, items, 1)
	assert.Equal(t, lsp.DiagnosticSeverityInformation, *items[0].Severity)
}

func TestCompute_InlineRefIgnoredByDefault(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "b.md", "see [nope](./nowhere.md)\n")
	folder := loadFolder(t, dir)
	require.False(t, folder.InlineRefs)

	result := Compute(folder)
	doc := folder.FindByName("b")[0]
	assert.Empty(t, result[doc.Path.Key()].Items)
}

func TestCompute_BrokenInlineReferenceWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "b.md", "see [nope](./nowhere.md)\n")
	folder := loadFolder(t, dir)
	folder.InlineRefs = true

	result := Compute(folder)
	doc := folder.FindByName("b")[0]
	items := result[doc.Path.Key()].Items
	require.Len(t, items, 1)
	assert.Equal(t, lsp.DiagnosticSeverityWarning, *items[0].Severity)
}

func TestCompute_ValidInlineReferenceWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.md", "# Hello\n")
	mustWrite(t, dir, "b.md", "see [hi](./a.md)\n")
	folder := loadFolder(t, dir)
	folder.InlineRefs = true

	result := Compute(folder)
	doc := folder.FindByName("b")[0]
	assert.Empty(t, result[doc.Path.Key()].Items)
}

func TestCompute_ExternalInlineRefNeverFlaggedWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "b.md", "see [site](https://example.com)\n")
	folder := loadFolder(t, dir)
	folder.InlineRefs = true

	result := Compute(folder)
	doc := folder.FindByName("b")[0]
	assert.Empty(t, result[doc.Path.Key()].Items)
}
