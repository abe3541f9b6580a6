// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package strategy

import (
	"time"

	"github.com/black-desk/wswatch/pkg/classify"
	"go.uber.org/zap"
)

// Selector picks the notification strategy for a workspace root.
type Selector struct {
	classifier      *classify.Classifier
	interval        time.Duration
	compareContents bool
	probe           func(path string) bool
	log             *zap.SugaredLogger
}

func NewSelector(opts ...SelectorOpt) *Selector {
	s := &Selector{
		interval:        DefaultPollInterval,
		compareContents: true,
	}

	for i := range opts {
		opts[i](s)
	}

	if s.classifier == nil {
		s.classifier = classify.Default()
	}

	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	return s
}

type SelectorOpt func(s *Selector)

func WithClassifier(c *classify.Classifier) SelectorOpt {
	return func(s *Selector) {
		s.classifier = c
	}
}

func WithPolling(interval time.Duration, compareContents bool) SelectorOpt {
	return func(s *Selector) {
		if interval > 0 {
			s.interval = interval
		}
		s.compareContents = compareContents
	}
}

// WithRemoteFSProbe makes Select consult probe after the path markers.
// Without a probe Select is a pure function of the root path.
func WithRemoteFSProbe(probe func(path string) bool) SelectorOpt {
	return func(s *Selector) {
		s.probe = probe
	}
}

func WithLogger(log *zap.SugaredLogger) SelectorOpt {
	return func(s *Selector) {
		s.log = log
	}
}

// Select returns polling with content comparison for roots on cloud synced
// storage, where native notifications follow the sync client's I/O rather
// than user edits, and native notifications everywhere else.
func (s *Selector) Select(root string) (ret Strategy) {
	defer func() {
		s.log.Debugw("Notification strategy selected.",
			"root", root,
			"strategy", ret.String(),
		)
	}()

	if s.classifier.IsCloudSyncPath(root) {
		return Polling(s.interval, s.compareContents)
	}

	if s.probe != nil && s.probe(root) {
		return Polling(s.interval, s.compareContents)
	}

	return Native()
}

var defaultSelector = NewSelector()

func Select(root string) Strategy {
	return defaultSelector.Select(root)
}
