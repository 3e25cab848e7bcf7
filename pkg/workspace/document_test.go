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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidown/wikidown/pkg/ast"
	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	full := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func TestLoad_ParsesElements(t *testing.T) {
	dir := t.TempDir()
	full := writeTempFile(t, dir, "a.md", "# Hello\n")

	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	docPath, err := path.FromFilesystemPath(full)
	require.NoError(t, err)

	doc, err := Load(root, docPath)
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	assert.Equal(t, "Hello", doc.Elements[0].(*ast.Heading).Text)
}

func TestLoad_MissingFileIsIoError(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	missing, err := path.FromFilesystemPath(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)

	_, err = Load(root, missing)
	require.ErrorIs(t, err, errs.IoError)
}

func TestFromOpen_ConstructsFromMessageText(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)

	uri := "file://" + filepath.ToSlash(filepath.Join(dir, "open.md"))
	doc, err := FromOpen(root, lsp.TextDocumentItem{URI: uri, Text: "# Opened\n"})
	require.NoError(t, err)
	assert.Equal(t, "Opened", doc.Elements[0].(*ast.Heading).Text)
}

func TestApplyChange_IncrementalEditReparsesElements(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	uri := "file://" + filepath.ToSlash(filepath.Join(dir, "a.md"))
	doc, err := FromOpen(root, lsp.TextDocumentItem{URI: uri, Text: "# Hello\n"})
	require.NoError(t, err)

	rng := &lsp.Range{
		Start: lsp.Position{Line: 0, Character: 2},
		End:   lsp.Position{Line: 0, Character: 7},
	}
	next, err := doc.ApplyChange([]lsp.TextDocumentContentChangeEvent{
		{Range: rng, Text: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, "# World\n", next.Text.Text())
	require.Len(t, next.Elements, 1)
	assert.Equal(t, "World", next.Elements[0].(*ast.Heading).Text)
}

func TestApplyChange_FullReplacementWhenRangeNil(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	uri := "file://" + filepath.ToSlash(filepath.Join(dir, "a.md"))
	doc, err := FromOpen(root, lsp.TextDocumentItem{URI: uri, Text: "# Hello\n"})
	require.NoError(t, err)

	next, err := doc.ApplyChange([]lsp.TextDocumentContentChangeEvent{
		{Text: "# Replaced\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, "# Replaced\n", next.Text.Text())
}

func TestName_StripsExtension(t *testing.T) {
	dir := t.TempDir()
	root, err := path.FromFilesystemPath(dir)
	require.NoError(t, err)
	uri := "file://" + filepath.ToSlash(filepath.Join(dir, "My Note.md"))
	doc, err := FromOpen(root, lsp.TextDocumentItem{URI: uri, Text: ""})
	require.NoError(t, err)
	assert.Equal(t, "My Note", doc.Name())
}
