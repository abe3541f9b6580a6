// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wswatch is the workspace watching daemon:
// a session manager behind an HTTP boundary.
package wswatch

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"go.uber.org/zap"
)

// Runner is a component living as long as the daemon.
type Runner interface {
	Run(ctx context.Context) error
}

// Closer releases what a component holds after every Runner returned.
type Closer interface {
	Close()
}

type WSWatch struct {
	cfg *config.Config

	manager Runner
	server  Runner
	closers []Closer

	log *zap.SugaredLogger
}

func New(opts ...Opt) (ret *WSWatch, err error) {
	defer Wrap(&err, "create wswatch daemon")

	w := &WSWatch{}
	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	if w.cfg == nil {
		err = ErrConfigMissing
		return
	}

	if w.manager == nil {
		err = ErrManagerMissing
		return
	}

	if w.server == nil {
		err = ErrServerMissing
		return
	}

	ret = w

	w.log.Debugw("Create a new daemon.",
		"configuration", w.cfg,
	)

	return
}

type Opt = (func(*WSWatch) (*WSWatch, error))

func WithConfig(cfg *config.Config) Opt {
	return func(w *WSWatch) (ret *WSWatch, err error) {
		w.cfg = cfg
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *WSWatch) (ret *WSWatch, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}

func WithManager(m Runner) Opt {
	return func(w *WSWatch) (ret *WSWatch, err error) {
		w.manager = m
		ret = w
		return
	}
}

func WithServer(s Runner) Opt {
	return func(w *WSWatch) (ret *WSWatch, err error) {
		w.server = s
		ret = w
		return
	}
}

// WithCloser registers c to be closed when Run returns,
// the websocket hub for example.
func WithCloser(c Closer) Opt {
	return func(w *WSWatch) (ret *WSWatch, err error) {
		w.closers = append(w.closers, c)
		ret = w
		return
	}
}
