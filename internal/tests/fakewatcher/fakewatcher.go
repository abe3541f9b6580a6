// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fakewatcher provides a filesystem watcher
// fed by the test instead of the kernel.
package fakewatcher

import (
	"sync"

	"github.com/black-desk/wswatch/pkg/types"
)

type Watcher struct {
	// StartErr is returned by Start when set.
	StartErr error
	// Events is the channel handed out by Start. Tests send on it.
	Events chan types.RawEvent

	mu      sync.Mutex
	root    string
	started bool
	stopped bool
}

func New() *Watcher {
	return &Watcher{Events: make(chan types.RawEvent)}
}

func (w *Watcher) Start(root string) (<-chan types.RawEvent, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.root = root
	if w.StartErr != nil {
		return nil, w.StartErr
	}

	w.started = true
	return w.Events, nil
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	return nil
}

func (w *Watcher) Root() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.root
}

func (w *Watcher) Started() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.started
}

func (w *Watcher) Stopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stopped
}
