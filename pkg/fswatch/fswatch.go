// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fswatch creates the filesystem watcher matching a strategy.
package fswatch

import (
	"fmt"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/fswatch/native"
	"github.com/black-desk/wswatch/pkg/fswatch/poll"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/strategy"
	"go.uber.org/zap"
)

// Factory builds an unstarted watcher for a strategy.
type Factory func(st strategy.Strategy) (interfaces.FSWatcher, error)

type options struct {
	bufferSize int
	log        *zap.SugaredLogger
}

type Opt func(o *options)

func WithBufferSize(size int) Opt {
	return func(o *options) {
		o.bufferSize = size
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(o *options) {
		o.log = log
	}
}

// NewFactory returns a Factory building native or polling watchers
// with the given options.
func NewFactory(opts ...Opt) Factory {
	o := &options{
		bufferSize: native.DefaultBufferSize,
	}
	for i := range opts {
		opts[i](o)
	}

	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	return func(st strategy.Strategy) (ret interfaces.FSWatcher, err error) {
		defer Wrap(&err, "create %s watcher", st.Kind)

		switch st.Kind {
		case strategy.KindNative:
			var w *native.Watcher
			w, err = native.New(
				native.WithBufferSize(o.bufferSize),
				native.WithLogger(o.log),
			)
			if err != nil {
				return
			}
			ret = w
		case strategy.KindPolling:
			var w *poll.Watcher
			w, err = poll.New(
				poll.WithInterval(st.Interval),
				poll.WithCompareContents(st.CompareContents),
				poll.WithBufferSize(o.bufferSize),
				poll.WithLogger(o.log),
			)
			if err != nil {
				return
			}
			ret = w
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownStrategy, st.Kind)
		}

		return
	}
}
