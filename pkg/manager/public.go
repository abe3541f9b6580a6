// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import (
	"context"
	"slices"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/filter"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/session"
	"github.com/black-desk/wswatch/pkg/types"
)

// Watch starts monitoring root. It returns once the recursive
// subscription is established, or with the reason it could not be.
func (m *Manager) Watch(root string) (ret *types.SessionInfo, err error) {
	defer Wrap(&err, "watch %q", root)

	if root == "" {
		err = ErrRootMissing
		return
	}

	requested := root
	root, err = resolveRoot(root)
	if err != nil {
		return
	}

	st := m.selectStrategy(requested, root)

	var watcher interfaces.FSWatcher
	watcher, err = m.factory(st)
	if err != nil {
		return
	}

	var pipeline *filter.Pipeline
	pipeline, err = filter.New(append(slices.Clone(m.filterOpts),
		filter.WithRoot(root),
		filter.WithLogger(m.log),
	)...)
	if err != nil {
		m.releaseWatcher(watcher)
		return
	}

	var s *session.Session
	s, err = session.New(
		session.WithRoot(root),
		session.WithStrategy(st),
		session.WithWatcher(watcher),
		session.WithFilter(pipeline),
		session.WithEmitter(m.emitter),
		session.WithLogger(m.log),
	)
	if err != nil {
		return
	}

	err = m.spawn(s)
	if err != nil {
		return
	}

	ret = s.Info()
	return
}

// Unwatch cancels every session on root and waits for them to finish.
func (m *Manager) Unwatch(root string) (err error) {
	defer Wrap(&err, "unwatch %q", root)

	if root == "" {
		err = ErrRootMissing
		return
	}

	root, err = resolveRoot(root)
	if err != nil {
		return
	}

	m.mu.Lock()
	retired := m.detach(root)
	m.mu.Unlock()

	if len(retired) == 0 {
		err = &ErrSessionNotFound{Root: root}
		return
	}

	m.retire(retired)
	return
}

// Sessions lists the running sessions sorted by root, then by start time.
func (m *Manager) Sessions() (ret []*types.SessionInfo) {
	m.mu.Lock()
	for _, e := range m.sessions {
		ret = append(ret, e.session.Info())
	}
	m.mu.Unlock()

	slices.SortFunc(ret, func(a, b *types.SessionInfo) int {
		if c := strings.Compare(a.Root, b.Root); c != 0 {
			return c
		}
		return a.StartedAt.Compare(b.StartedAt)
	})

	return
}

// Run watches the configured workspaces, then blocks until ctx is done.
// Every session is cancelled and waited for before Run returns.
func (m *Manager) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "run session manager")
	defer m.Close()

	for i := range m.workspaces {
		_, err = m.Watch(m.workspaces[i])
		if err != nil {
			return
		}
	}

	m.log.Infow("Session manager started.",
		"workspaces", len(m.workspaces),
	)

	<-ctx.Done()
	err = ctx.Err()
	return
}

// Close cancels every session and waits for them.
// Watch fails with ErrManagerClosed afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()

	m.log.Debugw("Session manager closed.")
}
