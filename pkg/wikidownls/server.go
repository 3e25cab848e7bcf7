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

// Package wikidownls wires the protocol-agnostic workspace/state/resolver
// packages to the LSP mux: it is the only package that knows both "LSP
// method" and "wikidown domain operation".
package wikidownls

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wikidown/wikidown/pkg/config"
	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/path"
	"github.com/wikidown/wikidown/pkg/publish"
	"github.com/wikidown/wikidown/pkg/state"
	"github.com/wikidown/wikidown/pkg/workspace"
)

// Server implements lsp.LanguageServer. It owns the single state cell for
// the process; every handler either reads it or replaces it wholesale via
// commit, never mutates it in place.
type Server struct {
	version string
	logger  *log.Logger

	state        *state.State
	queue        *publish.Queue
	shuttingDown bool
}

// NewServer constructs a Server. Initialize must be called (by the mux,
// on the first "initialize" request) before any other handler runs.
func NewServer(version string, logger *log.Logger) *Server {
	return &Server{version: version, logger: logger.WithScope("pkg/wikidownls")}
}

type namedRoot struct {
	name string
	root path.Path
}

// resolveWorkspaceFolders implements the fallback order from §6:
// workspaceFolders, then rootUri, then rootPath.
func resolveWorkspaceFolders(params lsp.InitializeParams) ([]namedRoot, error) {
	var roots []namedRoot

	if len(params.WorkspaceFolders) > 0 {
		for _, wf := range params.WorkspaceFolders {
			p, err := path.FromURI(wf.Uri)
			if err != nil {
				continue
			}
			roots = append(roots, namedRoot{name: wf.Name, root: p})
		}
	} else if params.RootUri != nil && *params.RootUri != "" {
		if p, err := path.FromURI(*params.RootUri); err == nil {
			roots = append(roots, namedRoot{name: filepath.Base(p.Canonical()), root: p})
		}
	} else if params.RootPath != nil && *params.RootPath != "" {
		if p, err := path.FromFilesystemPath(*params.RootPath); err == nil {
			roots = append(roots, namedRoot{name: filepath.Base(p.Canonical()), root: p})
		}
	}

	if len(roots) == 0 {
		return nil, errs.NoWorkspace
	}
	return roots, nil
}

func loadFolder(name string, root path.Path, logger *log.Logger) *workspace.Folder {
	cfg, err := config.LoadConfig(root.Canonical())
	if err != nil {
		logger.Warn("failed to load workspace config, using defaults", "root", root, "error", err)
		cfg = config.GetDefaultConfig()
	}

	folder, err := workspace.TryLoad(name, root, workspace.ScanOptions{Exclude: cfg.Exclude, MaxFiles: cfg.MaxFiles}, logger)
	if err != nil {
		logger.Warn("folder scan failed", "root", root, "error", err)
		return nil
	}
	if folder == nil {
		folder = &workspace.Folder{Name: name, Root: root, Documents: map[string]*workspace.Document{}}
	}
	folder.InlineRefs = cfg.InlineRefs
	return folder
}

// Initialize resolves the workspace, scans every folder, and answers with
// the capabilities wikidown supports.
func (s *Server) Initialize(params lsp.InitializeParams) (lsp.InitializeResult, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	s.logger.Info("client initialized", "client", clientName, "server_version", s.version)

	roots, err := resolveWorkspaceFolders(params)
	if err != nil {
		s.logger.Error("no workspace folder could be resolved", "error", err)
		return lsp.InitializeResult{}, err
	}

	st := state.New(params.Capabilities)
	for _, r := range roots {
		folder := loadFolder(r.name, r.root, s.logger)
		if folder == nil {
			continue
		}
		st = st.WithFolder(r.root, folder)
	}
	s.state = st

	trueVal := true
	openClose := true
	syncKind := lsp.TextDocumentSyncKindIncremental
	fileKind := lsp.FileOperationPatternKindFile
	ignoreCase := true
	mdFilter := []lsp.FileOperationFilter{{
		Pattern: lsp.FileOperationPattern{
			Glob:    "**/*.md",
			Matches: &fileKind,
			Options: &lsp.FileOperationPatternOptions{IgnoreCase: &ignoreCase},
		},
	}}

	return lsp.InitializeResult{
		ServerInfo: &lsp.ServerInfo{Name: "wikidown-language-server", Version: s.version},
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptions{
				OpenClose: &openClose,
				Change:    &syncKind,
			},
			CompletionProvider: &lsp.CompletionOptions{
				TriggerCharacters: []string{"[", ":", "|", "@"},
			},
			DefinitionProvider:     true,
			HoverProvider:          true,
			DocumentSymbolProvider: true,
			Workspace: &lsp.WorkspaceServerCapabilities{
				WorkspaceFolders: &lsp.WorkspaceFoldersServerCapabilities{
					Supported:           &trueVal,
					ChangeNotifications: true,
				},
				FileOperations: &lsp.FileOperationsServerCapabilities{
					DidCreate: &lsp.FileOperationRegistrationOptions{Filters: mdFilter},
					DidDelete: &lsp.FileOperationRegistrationOptions{Filters: mdFilter},
				},
			},
		},
	}, nil
}

// RegisterHandlers wires every notification and method this server
// answers, and constructs the publish queue, whose consumer goroutine is
// launched only when "initialized" calls Start.
func (s *Server) RegisterHandlers(mux *lsp.Mux) error {
	s.queue = publish.New(func(p publish.Publish) error {
		return mux.PublishNotification(lsp.MethodTextDocumentPublishDiagnostics.String(), lsp.PublishDiagnosticsParams{
			URI:         p.URI,
			Diagnostics: p.Diagnostics,
		})
	}, s.logger)

	mux.RegisterNotification(lsp.MethodInitialized, s.handleInitialized)
	mux.RegisterNotification(lsp.MethodExit, s.handleExit)

	mux.RegisterNotification(lsp.MethodTextDocumentDidOpen, s.handleDidOpen)
	mux.RegisterNotification(lsp.MethodTextDocumentDidChange, s.handleDidChange)
	mux.RegisterNotification(lsp.MethodTextDocumentDidClose, s.handleDidClose)
	mux.RegisterNotification(lsp.MethodTextDocumentDidSave, s.handleDidSave)

	mux.RegisterNotification(lsp.MethodWorkspaceDidChangeWorkspaceFolders, s.handleDidChangeWorkspaceFolders)
	mux.RegisterNotification(lsp.MethodWorkspaceDidCreateFiles, s.handleDidCreateFiles)
	mux.RegisterNotification(lsp.MethodWorkspaceDidDeleteFiles, s.handleDidDeleteFiles)
	mux.RegisterNotification(lsp.MethodCancelRequest, s.handleCancelRequest)

	mux.RegisterMethod(lsp.MethodTextDocumentDocumentSymbol, s.handleDocumentSymbol)
	mux.RegisterMethod(lsp.MethodTextDocumentCompletion, s.handleCompletion)
	mux.RegisterMethod(lsp.MethodTextDocumentDefinition, s.handleDefinition)
	mux.RegisterMethod(lsp.MethodTextDocumentHover, s.handleHover)
	mux.RegisterMethod(lsp.MethodShutdown, s.handleShutdown)

	s.logger.Debug("registered lsp handlers")
	return nil
}

// Shutdown stops the publish queue. Per §7 pending publishes may be
// dropped; Stop clears them rather than draining.
func (s *Server) Shutdown() error {
	s.logger.Info("shutting down", "version", s.version)
	s.shuttingDown = true
	if s.queue != nil {
		s.queue.Stop()
	}
	return nil
}

// commit runs the update→diff→publish step (§4.8) and enqueues whatever
// it returns. Enqueuing before the queue is started is fine: the queue
// preserves and flushes on Start.
func (s *Server) commit(next *state.State) {
	committed, publishes := state.Update(next)
	s.state = committed
	for _, p := range publishes {
		s.queue.Enqueue(p)
	}
}

func (s *Server) handleInitialized(_ json.RawMessage) error {
	s.logger.Info("initialized notification received, starting publish queue")
	s.queue.Start()
	s.commit(s.state)
	return nil
}

func (s *Server) handleExit(_ json.RawMessage) error {
	code := 1
	if s.shuttingDown {
		code = 0
	}
	s.logger.Info("exit notification received", "code", code)
	os.Exit(code)
	return nil
}

// handleCancelRequest is a no-op: handlers are synchronous computations
// that always run to completion (§5), so there is nothing to cancel.
func (s *Server) handleCancelRequest(_ json.RawMessage) error {
	return nil
}

// handleDidSave is a no-op: didChange already re-parses on every
// keystroke, and the server never writes files, so save carries no new
// information.
func (s *Server) handleDidSave(_ json.RawMessage) error {
	return nil
}

func (s *Server) handleShutdown(_ json.RawMessage) (any, error) {
	return nil, s.Shutdown()
}
