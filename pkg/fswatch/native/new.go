// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import (
	"sync"

	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/rjeczalik/notify"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const DefaultBufferSize = 64

// Watcher subscribes to OS change notifications through notify.
type Watcher struct {
	eventsIn  chan notify.EventInfo
	eventsOut chan types.RawEvent
	done      chan struct{}

	root string

	bufferSize int
	wg         conc.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
	started    bool

	log *zap.SugaredLogger
}

var _ interfaces.FSWatcher = &Watcher{}

func New(opts ...Opt) (ret *Watcher, err error) {
	w := &Watcher{
		bufferSize: DefaultBufferSize,
		done:       make(chan struct{}),
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

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	w.eventsIn = make(chan notify.EventInfo, w.bufferSize)
	w.eventsOut = make(chan types.RawEvent)

	ret = w

	w.log.Debugw("Create a native filesystem watcher.",
		"buffer", w.bufferSize,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

func WithBufferSize(size int) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if size <= 0 {
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
