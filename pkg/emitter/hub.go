// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package emitter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	DefaultQueueSize    = 64
	DefaultWriteTimeout = 10 * time.Second

	readBufferSize  = 1024
	writeBufferSize = 1024
	readLimit       = 4096
)

// Hub broadcasts signals to every connected websocket client.
// It is an http.Handler, mount it where clients should connect.
type Hub struct {
	queueSize    int
	writeTimeout time.Duration
	upgrader     websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	wg conc.WaitGroup

	log *zap.SugaredLogger
}

type client struct {
	conn      *websocket.Conn
	remote    string
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewHub(opts ...HubOpt) (ret *Hub, err error) {
	defer Wrap(&err, "create websocket hub")

	h := &Hub{
		queueSize:    DefaultQueueSize,
		writeTimeout: DefaultWriteTimeout,
		clients:      map[*client]struct{}{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
		},
	}

	for i := range opts {
		h, err = opts[i](h)
		if err != nil {
			return
		}
	}

	if h.log == nil {
		h.log = zap.NewNop().Sugar()
	}

	ret = h
	return
}

type HubOpt func(h *Hub) (ret *Hub, err error)

func WithQueueSize(size int) HubOpt {
	return func(h *Hub) (ret *Hub, err error) {
		if size <= 0 {
			err = ErrQueueTooSmall
			return
		}

		h.queueSize = size
		ret = h
		return
	}
}

func WithWriteTimeout(timeout time.Duration) HubOpt {
	return func(h *Hub) (ret *Hub, err error) {
		if timeout <= 0 {
			err = ErrBadWriteTimeout
			return
		}

		h.writeTimeout = timeout
		ret = h
		return
	}
}

// WithCheckOrigin replaces the same-origin check of the upgrader.
func WithCheckOrigin(check func(r *http.Request) bool) HubOpt {
	return func(h *Hub) (ret *Hub, err error) {
		h.upgrader.CheckOrigin = check
		ret = h
		return
	}
}

func WithHubLogger(log *zap.SugaredLogger) HubOpt {
	return func(h *Hub) (ret *Hub, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		h.log = log
		ret = h
		return
	}
}

// ServeHTTP upgrades the request and blocks until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugw("Failed to upgrade connection.",
			"remote", r.RemoteAddr,
			"error", err,
		)
		return
	}

	c := &client{
		conn:   conn,
		remote: r.RemoteAddr,
		send:   make(chan []byte, h.queueSize),
		done:   make(chan struct{}),
	}

	if !h.add(c) {
		c.close()
		return
	}

	h.log.Infow("Client connected.", "remote", c.remote)

	h.wg.Go(func() { h.writeLoop(c) })

	h.readLoop(c)
	h.remove(c)

	h.log.Infow("Client disconnected.", "remote", c.remote)
}

// Emit queues the batch for every client without blocking.
// Clients whose queue is full are disconnected,
// and the returned error lists them.
func (h *Hub) Emit(ctx context.Context, batch *types.ChangeBatch) (err error) {
	defer Wrap(&err, "broadcast change batch")

	if err = ctx.Err(); err != nil {
		return
	}

	if batch.Empty() {
		err = ErrEmptyBatch
		return
	}

	var msg []byte
	msg, err = json.Marshal(types.NewFSChangeSignal(batch))
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		err = ErrHubClosed
		return
	}

	var errs []error
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			delete(h.clients, c)
			c.close()
			errs = append(errs, &ErrClientTooSlow{Remote: c.remote})
		}
	}

	err = errors.Join(errs...)
	return
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client and waits for their writers.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()

	h.wg.Wait()
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	c.close()
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			err := c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err == nil {
				err = c.conn.WriteMessage(websocket.TextMessage, msg)
			}
			if err != nil {
				h.log.Debugw("Failed to write to client.",
					"remote", c.remote,
					"error", err,
				)
				h.remove(c)
				return
			}
		}
	}
}

// readLoop discards everything the client sends.
// It returns when the connection is closed from either side.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(readLimit)

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
