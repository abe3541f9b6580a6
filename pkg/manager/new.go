// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package manager implements watch requests:
// it turns a workspace root into a running watch session.
package manager

import (
	"context"
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/filter"
	"github.com/black-desk/wswatch/pkg/fswatch"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/session"
	"github.com/black-desk/wswatch/pkg/strategy"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Policy decides what happens to sessions already watching a root
// when that root is requested again.
type Policy string

const (
	// PolicyReplace retires the old sessions once the new one is set up.
	PolicyReplace Policy = "replace"
	// PolicyStack keeps them, every session emits its own signals.
	PolicyStack Policy = "stack"
)

type Manager struct {
	selector   *strategy.Selector
	factory    fswatch.Factory
	emitter    interfaces.Emitter
	filterOpts []filter.Opt
	policy     Policy
	workspaces []string

	mu       sync.Mutex
	sessions map[string]*entry
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup

	log *zap.SugaredLogger
}

type entry struct {
	session *session.Session
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(opts ...Opt) (ret *Manager, err error) {
	defer Wrap(&err, "create session manager")

	m := &Manager{
		policy:   PolicyReplace,
		sessions: map[string]*entry{},
	}

	for i := range opts {
		m, err = opts[i](m)
		if err != nil {
			return
		}
	}

	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}

	if m.selector == nil {
		err = ErrSelectorMissing
		return
	}

	if m.factory == nil {
		err = ErrFactoryMissing
		return
	}

	if m.emitter == nil {
		err = ErrEmitterMissing
		return
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())

	ret = m

	m.log.Debugw("Create a session manager.",
		"policy", m.policy,
		"workspaces", m.workspaces,
	)

	return
}

type Opt func(m *Manager) (ret *Manager, err error)

func WithSelector(s *strategy.Selector) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		m.selector = s
		ret = m
		return
	}
}

// WithWatcherFactory sets how watchers are built for a chosen strategy.
func WithWatcherFactory(f fswatch.Factory) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		m.factory = f
		ret = m
		return
	}
}

func WithEmitter(e interfaces.Emitter) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		m.emitter = e
		ret = m
		return
	}
}

// WithFilterOpts sets the options shared by the filter pipeline
// of every session. The root is added by the manager.
func WithFilterOpts(opts ...filter.Opt) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		m.filterOpts = opts
		ret = m
		return
	}
}

func WithPolicy(p Policy) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		switch p {
		case PolicyReplace, PolicyStack:
		default:
			err = &ErrUnknownPolicy{Policy: p}
			return
		}

		m.policy = p
		ret = m
		return
	}
}

// WithWorkspaces sets the roots watched when Run starts.
func WithWorkspaces(roots []string) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		m.workspaces = roots
		ret = m
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(m *Manager) (ret *Manager, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		m.log = log
		ret = m
		return
	}
}
