// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/session"
	"github.com/black-desk/wswatch/pkg/strategy"
)

// spawn registers s, retires what the policy says,
// and starts the receive loop of s.
func (m *Manager) spawn(s *session.Session) (err error) {
	ctx, cancel := context.WithCancel(m.ctx)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()

		cancel()
		// Run returns at once and releases the watcher.
		_ = s.Run(ctx)

		err = ErrManagerClosed
		return
	}

	var retired []*entry
	if m.policy == PolicyReplace {
		retired = m.detach(s.Root())
	}

	e := &entry{
		session: s,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	m.sessions[s.ID()] = e

	// The loop joins m.wg before m.mu is released, so Close,
	// which marks m.closed under m.mu, always waits for it.
	// It only starts receiving after the old sessions are gone.
	start := make(chan struct{})
	m.wg.Go(func() {
		defer close(e.done)
		defer m.forget(e)

		<-start

		err := s.Run(ctx)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}

		m.log.Warnw("Watch session stopped.",
			"session", s.ID(),
			"root", s.Root(),
			"error", err,
		)
	})
	m.mu.Unlock()

	m.retire(retired)
	close(start)

	return
}

// resolveRoot makes root absolute and resolves its symlinks,
// so that watchers, which report real paths, and the filter pipeline
// agree on where the workspace is. A root which cannot be resolved
// is kept as is and the watcher reports the problem.
func resolveRoot(root string) (ret string, err error) {
	ret, err = filepath.Abs(root)
	if err != nil {
		return
	}

	resolved, evalErr := filepath.EvalSymlinks(ret)
	if evalErr != nil {
		return
	}

	ret = resolved
	return
}

// selectStrategy polls when either the requested path or the path it
// resolves to asks for polling, a symlink into a OneDrive folder for
// example, or a OneDrive shortcut pointing elsewhere.
func (m *Manager) selectStrategy(requested, resolved string) (ret strategy.Strategy) {
	ret = m.selector.Select(resolved)
	if ret.Kind == strategy.KindPolling || requested == resolved {
		return
	}

	requested, err := filepath.Abs(requested)
	if err != nil || requested == resolved {
		return
	}

	if st := m.selector.Select(requested); st.Kind == strategy.KindPolling {
		ret = st
	}

	return
}

// detach removes the sessions on root from the registry.
// m.mu must be held.
func (m *Manager) detach(root string) (ret []*entry) {
	for id, e := range m.sessions {
		if e.session.Root() != root {
			continue
		}

		delete(m.sessions, id)
		ret = append(ret, e)
	}

	return
}

func (m *Manager) retire(entries []*entry) {
	for _, e := range entries {
		e.cancel()
	}

	for _, e := range entries {
		<-e.done

		m.log.Infow("Watch session retired.",
			"session", e.session.ID(),
			"root", e.session.Root(),
		)
	}
}

// forget drops e from the registry if it is still there.
func (m *Manager) forget(e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := e.session.ID()
	if m.sessions[id] == e {
		delete(m.sessions, id)
	}
}

func (m *Manager) releaseWatcher(w interfaces.FSWatcher) {
	err := w.Stop()
	if err == nil {
		return
	}

	m.log.Warnw("Failed to release watcher.", "error", err)
}
