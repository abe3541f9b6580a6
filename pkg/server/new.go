// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package server is the HTTP boundary between the daemon and its UI.
package server

import (
	"net/http"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/classify"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/strategy"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	maxRequestBody    = 1 << 16
)

type Server struct {
	listen     string
	manager    interfaces.SessionManager
	events     http.Handler
	selector   *strategy.Selector
	classifier *classify.Classifier

	handler http.Handler

	log *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Server, err error) {
	defer Wrap(&err, "create http server")

	s := &Server{}
	for i := range opts {
		s, err = opts[i](s)
		if err != nil {
			return
		}
	}

	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	if s.listen == "" {
		err = ErrListenMissing
		return
	}

	if s.manager == nil {
		err = ErrManagerMissing
		return
	}

	if s.events == nil {
		err = ErrEventsMissing
		return
	}

	if s.selector == nil {
		err = ErrSelectorMissing
		return
	}

	if s.classifier == nil {
		s.classifier = classify.Default()
	}

	s.handler = s.routes()

	ret = s

	s.log.Debugw("Create a http server.",
		"listen", s.listen,
	)

	return
}

type Opt func(s *Server) (ret *Server, err error)

func WithListen(addr string) Opt {
	return func(s *Server) (ret *Server, err error) {
		s.listen = addr
		ret = s
		return
	}
}

func WithManager(m interfaces.SessionManager) Opt {
	return func(s *Server) (ret *Server, err error) {
		s.manager = m
		ret = s
		return
	}
}

// WithEvents sets the handler serving the websocket event stream.
func WithEvents(h http.Handler) Opt {
	return func(s *Server) (ret *Server, err error) {
		s.events = h
		ret = s
		return
	}
}

func WithSelector(sel *strategy.Selector) Opt {
	return func(s *Server) (ret *Server, err error) {
		s.selector = sel
		ret = s
		return
	}
}

func WithClassifier(c *classify.Classifier) Opt {
	return func(s *Server) (ret *Server, err error) {
		s.classifier = c
		ret = s
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(s *Server) (ret *Server, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		s.log = log
		ret = s
		return
	}
}
