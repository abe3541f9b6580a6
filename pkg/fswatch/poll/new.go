// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"sync"
	"time"

	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const DefaultInterval = 2 * time.Second

// Watcher re-scans a directory tree periodically and reports the
// differences between two scans. With content comparison enabled,
// a file whose timestamp changed but whose content did not
// is not reported.
type Watcher struct {
	interval        time.Duration
	compareContents bool
	bufferSize      int

	root     string
	snapshot snapshot
	lastErr  string

	eventsOut chan types.RawEvent
	done      chan struct{}

	wg        conc.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool

	log *zap.SugaredLogger
}

var _ interfaces.FSWatcher = &Watcher{}

func New(opts ...Opt) (ret *Watcher, err error) {
	w := &Watcher{
		interval: DefaultInterval,
		done:     make(chan struct{}),
	}

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	w.eventsOut = make(chan types.RawEvent, w.bufferSize)

	ret = w

	w.log.Debugw("Create a polling filesystem watcher.",
		"interval", w.interval,
		"compare contents", w.compareContents,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

func WithInterval(interval time.Duration) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if interval <= 0 {
			err = ErrBadInterval
			return
		}

		w.interval = interval
		ret = w
		return
	}
}

func WithCompareContents(compare bool) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		w.compareContents = compare
		ret = w
		return
	}
}

func WithBufferSize(size int) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if size < 0 {
			err = ErrBufferTooSmall
			return
		}

		w.bufferSize = size
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}
