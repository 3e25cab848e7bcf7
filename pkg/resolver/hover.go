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

package resolver

// HoverSnippet returns the Markdown text to show for a resolved link: the
// target heading's scope text when one is set, or the full target
// document text otherwise.
func (r Result) HoverSnippet() string {
	if r.Heading == nil {
		return r.Document.Text.Text()
	}
	startOffset := r.Document.Text.PositionToOffset(r.Heading.Scope.Start)
	endOffset := r.Document.Text.PositionToOffset(r.Heading.Scope.End)
	text := r.Document.Text.Text()
	if startOffset < 0 || endOffset > len(text) || startOffset > endOffset {
		return text
	}
	return text[startOffset:endOffset]
}
