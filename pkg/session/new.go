// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session binds one workspace root to the watcher,
// filter and emitter serving it.
package session

import (
	"sync/atomic"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/strategy"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns its watcher. The watcher is stopped
// when Run returns, or by New if the handshake fails.
type Session struct {
	id        string
	root      string
	strategy  strategy.Strategy
	startedAt time.Time

	watcher interfaces.FSWatcher
	filter  interfaces.Filter
	emitter interfaces.Emitter

	events  <-chan types.RawEvent
	running atomic.Bool

	log *zap.SugaredLogger
}

// New validates its dependencies and starts the watcher on the root.
// The session is only returned when the subscription is established.
func New(opts ...Opt) (ret *Session, err error) {
	s := &Session{}
	for i := range opts {
		s, err = opts[i](s)
		if err != nil {
			return
		}
	}

	defer Wrap(&err, "start watch session on %s", s.root)

	if s.root == "" {
		err = ErrRootMissing
		return
	}

	if s.watcher == nil {
		err = ErrWatcherMissing
		return
	}

	if s.filter == nil {
		err = ErrFilterMissing
		return
	}

	if s.emitter == nil {
		err = ErrEmitterMissing
		return
	}

	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	s.id = uuid.NewString()
	s.log = s.log.With("session", s.id, "root", s.root)

	s.events, err = s.watcher.Start(s.root)
	if err != nil {
		stopErr := s.watcher.Stop()
		if stopErr != nil {
			s.log.Warnw("Failed to release watcher.", "error", stopErr)
		}
		return
	}

	s.startedAt = time.Now()
	ret = s

	s.log.Infow("Watch session started.",
		"strategy", s.strategy,
	)

	return
}

type Opt func(s *Session) (ret *Session, err error)

func WithRoot(root string) Opt {
	return func(s *Session) (ret *Session, err error) {
		s.root = root
		ret = s
		return
	}
}

// WithStrategy records how the watcher was chosen.
// It is informational only.
func WithStrategy(st strategy.Strategy) Opt {
	return func(s *Session) (ret *Session, err error) {
		s.strategy = st
		ret = s
		return
	}
}

func WithWatcher(w interfaces.FSWatcher) Opt {
	return func(s *Session) (ret *Session, err error) {
		s.watcher = w
		ret = s
		return
	}
}

func WithFilter(f interfaces.Filter) Opt {
	return func(s *Session) (ret *Session, err error) {
		s.filter = f
		ret = s
		return
	}
}

func WithEmitter(e interfaces.Emitter) Opt {
	return func(s *Session) (ret *Session, err error) {
		s.emitter = e
		ret = s
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(s *Session) (ret *Session, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		s.log = log
		ret = s
		return
	}
}
