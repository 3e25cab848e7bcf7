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

// Package errs holds the sentinel error kinds shared across the server's
// handlers, so callers can classify a failure with errors.Is instead of
// string matching.
package errs

import "errors"

var (
	// NotInitialized names the condition of a handler other than
	// initialize or shutdown running before initialize has completed. No
	// code returns it: until initialize succeeds only the initialize
	// handler is registered, and the mux answers any other request with a
	// method-not-found error.
	NotInitialized = errors.New("not initialized")

	// NoWorkspace is returned when initialize cannot resolve any
	// workspace folder from workspaceFolders, rootUri, or rootPath.
	NoWorkspace = errors.New("no workspace")

	// IoError wraps a filesystem read failure. The affected document is
	// skipped (folder scan) or the triggering operation is a no-op
	// (didCreate, didClose reload) rather than failing the request.
	IoError = errors.New("io error")

	// UnknownDocument is returned when an operation targets a document
	// path not present in any folder.
	UnknownDocument = errors.New("unknown document")
)
