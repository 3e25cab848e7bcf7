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

package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURI_RoundTripsOriginal(t *testing.T) {
	uri := "file:///home/user/notes/index.md"
	p, err := FromURI(uri)
	require.NoError(t, err)
	assert.Equal(t, uri, p.URI())
	assert.Equal(t, "/home/user/notes/index.md", p.Canonical())
}

func TestFromURI_PercentDecoded(t *testing.T) {
	p, err := FromURI("file:///home/user/my%20notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/my notes/a.md", p.Canonical())
}

func TestFromURI_RejectsNonFileScheme(t *testing.T) {
	_, err := FromURI("https://example.com/a.md")
	require.ErrorIs(t, err, BadPath)
}

func TestFromURI_RejectsUnparseable(t *testing.T) {
	_, err := FromURI("://not a uri")
	require.ErrorIs(t, err, BadPath)
}

func TestFromFilesystemPath_RejectsRelative(t *testing.T) {
	_, err := FromFilesystemPath("notes/a.md")
	require.ErrorIs(t, err, BadPath)
}

func TestEqual_SameCanonicalDifferentSpelling(t *testing.T) {
	a, err := FromURI("file:///home/user/notes/a.md")
	require.NoError(t, err)
	b, err := FromURI("file:///home/user/notes/../notes/a.md")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEqual_DifferentFiles(t *testing.T) {
	a, err := FromURI("file:///home/user/notes/a.md")
	require.NoError(t, err)
	b, err := FromURI("file:///home/user/notes/b.md")
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestUnder(t *testing.T) {
	root, err := FromFilesystemPath("/home/user/notes")
	require.NoError(t, err)
	doc, err := FromFilesystemPath("/home/user/notes/sub/a.md")
	require.NoError(t, err)
	outside, err := FromFilesystemPath("/home/user/other/a.md")
	require.NoError(t, err)

	assert.True(t, doc.Under(root))
	assert.False(t, outside.Under(root))
}

func TestBase_StripsExtension(t *testing.T) {
	p, err := FromFilesystemPath("/home/user/notes/My Note.md")
	require.NoError(t, err)
	assert.Equal(t, "My Note", p.Base())
}
