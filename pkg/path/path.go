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

// Package path gives every document a canonical identity across OS path
// conventions and file:// URIs, so the same note opened via a different
// URI spelling (case, separators, percent-encoding) still resolves to one
// document.
package path

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// BadPath is returned when the input is not a valid absolute URI or
// filesystem path.
var BadPath = errors.New("bad path")

// Path carries a document's original file:// URI, preserved verbatim for
// echoing back to the client, alongside a canonical absolute filesystem
// path used for equality, hashing, and disk access.
type Path struct {
	uri       string
	canonical string
}

// FromURI parses a file:// URI into a Path. Returns BadPath if uri does not
// parse or is not an absolute file URI.
func FromURI(uri string) (Path, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", BadPath, err)
	}
	if parsed.Scheme != "file" {
		return Path{}, fmt.Errorf("%w: unsupported scheme %q", BadPath, parsed.Scheme)
	}

	decoded, err := url.PathUnescape(parsed.Path)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", BadPath, err)
	}
	if decoded == "" {
		return Path{}, fmt.Errorf("%w: empty path", BadPath)
	}

	canonical := canonicalize(decoded)
	if !filepath.IsAbs(canonical) {
		return Path{}, fmt.Errorf("%w: not absolute: %s", BadPath, decoded)
	}

	return Path{uri: uri, canonical: canonical}, nil
}

// FromFilesystemPath builds a Path from an absolute filesystem path,
// synthesizing the file:// URI.
func FromFilesystemPath(p string) (Path, error) {
	if !filepath.IsAbs(p) {
		return Path{}, fmt.Errorf("%w: not absolute: %s", BadPath, p)
	}
	canonical := canonicalize(p)
	return Path{uri: pathToURI(canonical), canonical: canonical}, nil
}

// canonicalize normalizes separators, resolves "." and ".." segments, and
// (on Windows) normalizes drive-letter casing to uppercase.
func canonicalize(p string) string {
	p = filepath.FromSlash(p)
	p = filepath.Clean(p)
	if runtime.GOOS == "windows" && len(p) >= 2 && p[1] == ':' {
		p = strings.ToUpper(p[:1]) + p[1:]
	}
	return p
}

func pathToURI(canonical string) string {
	slashed := filepath.ToSlash(canonical)
	if runtime.GOOS == "windows" {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}

// URI returns the original URI string exactly as supplied, for round-trip
// echoing back to the client.
func (p Path) URI() string {
	return p.uri
}

// Canonical returns the canonical absolute filesystem path used for
// equality and disk access.
func (p Path) Canonical() string {
	return p.canonical
}

// comparisonKey returns the form used for equality and hashing: the
// canonical path, case-folded on platforms where the filesystem is
// case-insensitive.
func (p Path) comparisonKey() string {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(p.canonical)
	}
	return p.canonical
}

// Equal reports whether two Paths refer to the same file.
func (p Path) Equal(other Path) bool {
	return p.comparisonKey() == other.comparisonKey()
}

// Key returns a string suitable for use as a map key with Path identity
// semantics (case-folded where the platform filesystem is insensitive).
func (p Path) Key() string {
	return p.comparisonKey()
}

// Under reports whether p lies at or below root in the filesystem
// hierarchy.
func (p Path) Under(root Path) bool {
	rel, err := filepath.Rel(root.canonical, p.canonical)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return !strings.HasPrefix(rel, "..")
}

// Base returns the file name without its extension, used as a note's name
// for basename-based reference resolution.
func (p Path) Base() string {
	name := filepath.Base(p.canonical)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Dir returns the canonical path of the directory containing p.
func (p Path) Dir() string {
	return filepath.Dir(p.canonical)
}

// String implements fmt.Stringer, returning the canonical path.
func (p Path) String() string {
	return p.canonical
}
