// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/strategy"
	"github.com/black-desk/wswatch/pkg/types"
)

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Root() string {
	return s.root
}

func (s *Session) Info() *types.SessionInfo {
	info := &types.SessionInfo{
		ID:        s.id,
		Root:      s.root,
		Strategy:  s.strategy.Kind.String(),
		StartedAt: s.startedAt,
	}

	if s.strategy.Kind == strategy.KindPolling {
		info.Interval = s.strategy.Interval
	}

	return info
}

// Run receives events until ctx is done or the watcher goes away.
// Events are filtered and emitted one at a time in arrival order.
// It returns ctx.Err() when cancelled and nil when the watcher
// closed its channel.
func (s *Session) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "run watch session on %s", s.root)

	if !s.running.CompareAndSwap(false, true) {
		err = ErrAlreadyRunning
		return
	}

	defer s.stopWatcher()

	s.log.Debugw("Start receiving events.")
	defer s.log.Debugw("Stop receiving events.")

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case event, ok := <-s.events:
			if !ok {
				s.log.Infow("Watcher closed its event channel.")
				return
			}

			s.handle(ctx, &event)
		}
	}
}
