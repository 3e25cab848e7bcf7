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

// Package publish serializes diagnostic publishes to the LSP client. A
// Queue is drained by exactly one consumer goroutine, modeling the single
// cooperative publish-queue task the rest of the server communicates with
// only through Enqueue/Start/Stop — never by reaching into its internals.
package publish

import (
	"sync"

	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/lsp"
)

// Publish is one textDocument/publishDiagnostics payload.
type Publish struct {
	URI         string
	Diagnostics []lsp.Diagnostic
}

// Sender delivers one Publish to the client, typically Mux.PublishNotification
// bound to the publishDiagnostics method.
type Sender func(p Publish) error

type queueState int

const (
	notStarted queueState = iota
	started
	stopped
)

// Queue is a single-producer, single-consumer FIFO of pending publishes.
// It is unbounded; nothing in the server caps how many publishes can
// accumulate. Messages enqueued before Start are preserved and flushed
// once Start runs. Stop is terminal: once stopped, further enqueues are
// dropped and nothing already pending is delivered.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	state   queueState
	pending []Publish
	send    Sender
	logger  *log.Logger
}

// New returns a Queue in the not-started state.
func New(send Sender, logger *log.Logger) *Queue {
	q := &Queue{state: notStarted, send: send, logger: logger.WithScope("pkg/publish")}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue adds p to the back of the queue. A no-op once the queue has
// been stopped.
func (q *Queue) Enqueue(p Publish) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state == stopped {
		return
	}
	q.pending = append(q.pending, p)
	q.cond.Signal()
}

// Start transitions the queue to started and launches its consumer
// goroutine, which flushes any publishes enqueued beforehand before
// waiting for new ones. A no-op if already started or stopped.
func (q *Queue) Start() {
	q.mu.Lock()
	if q.state != notStarted {
		q.mu.Unlock()
		return
	}
	q.state = started
	q.mu.Unlock()
	go q.run()
}

// Stop transitions the queue to stopped, a terminal state. Pending
// publishes are dropped.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.state = stopped
	q.pending = nil
	q.cond.Signal()
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && q.state == started {
			q.cond.Wait()
		}
		if q.state != started {
			q.mu.Unlock()
			return
		}
		item := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if err := q.send(item); err != nil {
			q.logger.Error("failed to publish diagnostics", "uri", item.URI, "error", err)
		}
	}
}
