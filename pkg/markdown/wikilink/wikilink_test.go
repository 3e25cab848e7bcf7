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

package wikilink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPayload_DocOnly(t *testing.T) {
	doc, heading, ok := splitPayload("other-note")
	require.True(t, ok)
	require.NotNil(t, doc)
	assert.Equal(t, "other-note", *doc)
	assert.Nil(t, heading)
}

func TestSplitPayload_DocAndHeading(t *testing.T) {
	doc, heading, ok := splitPayload("other-note#Some Heading")
	require.True(t, ok)
	require.NotNil(t, doc)
	require.NotNil(t, heading)
	assert.Equal(t, "other-note", *doc)
	assert.Equal(t, "Some Heading", *heading)
}

func TestSplitPayload_HeadingOnly(t *testing.T) {
	doc, heading, ok := splitPayload("#Local Heading")
	require.True(t, ok)
	assert.Nil(t, doc)
	require.NotNil(t, heading)
	assert.Equal(t, "Local Heading", *heading)
}

func TestSplitPayload_TrimsOuterWhitespaceOnly(t *testing.T) {
	doc, heading, ok := splitPayload("  my doc  #  my heading  ")
	require.True(t, ok)
	require.NotNil(t, doc)
	require.NotNil(t, heading)
	assert.Equal(t, "my doc", *doc)
	assert.Equal(t, "my heading", *heading)
}

func TestSplitPayload_EmptyIsInvalid(t *testing.T) {
	_, _, ok := splitPayload("")
	assert.False(t, ok)
	_, _, ok = splitPayload("   ")
	assert.False(t, ok)
}

func TestSplitPayload_EmptyHeadingIsInvalid(t *testing.T) {
	_, _, ok := splitPayload("doc#")
	assert.False(t, ok)
}
