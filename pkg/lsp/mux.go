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

package lsp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/jsonrpc"
	"github.com/wikidown/wikidown/pkg/log"
)

type NotificationHandler func(params json.RawMessage) error
type MethodHandler func(params json.RawMessage) (any, error)

// formatRequestID formats a request ID for logging purposes
func formatRequestID(id *json.RawMessage) string {
	if id == nil {
		return "null"
	}
	return string(*id)
}

// Mux reads JSON-RPC messages from reader and dispatches them to registered
// handlers. Messages are processed one at a time, in the order they arrive:
// a request's handler runs to completion, and any response or notification
// it produces is written, before the next message is read. This is required
// by the single-threaded cooperative concurrency model the language server
// implements — state mutation must appear atomic from the client's
// perspective, and notifications (in particular textDocument/didChange) must
// fully complete before the next message is read.
type Mux struct {
	reader               *bufio.Reader
	writer               *bufio.Writer
	notificationHandlers map[method]NotificationHandler
	methodHandlers       map[method]MethodHandler
	writeMutex           *sync.Mutex

	version string
	logger  *log.Logger
	server  LanguageServer
}

func NewMux(reader *bufio.Reader, writer *bufio.Writer, version string, logger *log.Logger) *Mux {
	return &Mux{
		reader:               reader,
		writer:               writer,
		notificationHandlers: make(map[method]NotificationHandler),
		methodHandlers:       make(map[method]MethodHandler),
		writeMutex:           &sync.Mutex{},
		version:              version,
		logger:               logger.WithScope("pkg/lsp"),
	}
}

func (m *Mux) RegisterNotification(method method, handler NotificationHandler) {
	m.notificationHandlers[method] = handler
}

func (m *Mux) RegisterMethod(method method, handler MethodHandler) {
	m.methodHandlers[method] = handler
}

func (m *Mux) SetServer(server LanguageServer) {
	m.server = server
}

func (m *Mux) write(response jsonrpc.Message) error {
	m.writeMutex.Lock()
	defer m.writeMutex.Unlock()
	return jsonrpc.Write(m.writer, response)
}

// PublishNotification sends a notification to the client
func (m *Mux) PublishNotification(method string, params any) error {
	notification := jsonrpc.NewNotification(method, params)
	return m.write(notification)
}

func (m *Mux) process() error {
	request, err := jsonrpc.Read(m.reader)
	if err != nil {
		m.logger.Error("failed to read JSON-RPC request", "error", err)
		return err
	}

	if request.IsNotification() {
		m.logger.Debug("processing notification", "method", request.Method)
		if handler, ok := m.notificationHandlers[method(request.Method)]; ok {
			if err := handler(request.Params); err != nil {
				m.logger.Error("notification handler failed", "method", request.Method, "error", err)
			}
		} else {
			m.logger.Warn("no handler for notification", "method", request.Method)
		}
		return nil
	}

	m.logger.Debug("processing request", "method", request.Method, "id", formatRequestID(request.ID))
	handler, ok := m.methodHandlers[method(request.Method)]
	if !ok {
		m.logger.Warn("method not found", "method", request.Method, "id", formatRequestID(request.ID))
		return m.write(jsonrpc.NewMethodNotFoundError(request.ID, request.Method))
	}
	result, err := handler(request.Params)
	if err != nil {
		m.logger.Error("method handler failed", "method", request.Method, "id", formatRequestID(request.ID), "error", err)
		if writeErr := m.write(jsonrpc.NewInternalError(request.ID, err)); writeErr != nil {
			return writeErr
		}
		// NoWorkspace from initialize is fatal per §7: the client gets a
		// JSON-RPC error response above, and the error also propagates out
		// of Run() so the process exits instead of idling with no handlers
		// registered.
		if errors.Is(err, errs.NoWorkspace) {
			return err
		}
		return nil
	}
	m.logger.Debug("method completed successfully", "method", request.Method, "id", formatRequestID(request.ID))
	return m.write(jsonrpc.NewResponse(request.ID, result))
}

func (m *Mux) Run() error {
	if m.server == nil {
		m.logger.Error("no lsp server set")
		return fmt.Errorf("no lsp server set")
	}

	m.RegisterMethod(MethodInitialize, func(params json.RawMessage) (any, error) {
		var initParams InitializeParams
		if err := json.Unmarshal(params, &initParams); err != nil {
			m.logger.Error("failed to unmarshal initialize params", "error", err)
			return nil, err
		}

		result, err := m.server.Initialize(initParams)
		if err != nil {
			m.logger.Error("server initialization failed", "error", err)
			return nil, err
		}

		if err := m.server.RegisterHandlers(m); err != nil {
			m.logger.Error("failed to register server handlers", "error", err)
			return nil, err
		}

		return result, nil
	})

	m.logger.Info("starting lsp message processing loop")
	for {
		if err := m.process(); err != nil {
			return err
		}
	}
}

// SendRequest sends a request to the client. Used nowhere in the current
// method set but kept for completeness; request IDs are generated fresh
// rather than hardcoded so concurrent outgoing requests never collide.
func (m *Mux) SendRequest(method string, params any) (any, error) {
	m.writeMutex.Lock()
	defer m.writeMutex.Unlock()

	requestID := jsonrpc.NewRequestID()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		m.logger.Error("failed to marshal request params", "method", method, "error", err)
		return nil, err
	}

	request := &jsonrpc.Request{
		ProtocolVersion: jsonrpc.JSONRPCVersion,
		Method:          method,
		Params:          paramsJSON,
		ID:              requestID,
	}

	if err := jsonrpc.Write(m.writer, request); err != nil {
		m.logger.Error("failed to send request", "method", method, "error", err)
		return nil, err
	}

	m.logger.Debug("sent request to client", "method", method)
	return nil, nil
}
