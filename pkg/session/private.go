// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"

	"github.com/black-desk/wswatch/pkg/types"
)

func (s *Session) handle(ctx context.Context, event *types.RawEvent) {
	if event.Err != nil {
		s.log.Warnw("Watcher reported an error.",
			"error", event.Err,
		)
		return
	}

	batch := s.filter.Apply(event)
	if batch.Empty() {
		return
	}

	s.log.Debugw("Emit changes.",
		"op", event.Op,
		"paths", batch.Paths,
	)

	err := s.emitter.Emit(ctx, batch)
	if err != nil {
		s.log.Warnw("Failed to emit changes.",
			"error", err,
		)
	}
}

func (s *Session) stopWatcher() {
	err := s.watcher.Stop()
	if err == nil {
		return
	}

	s.log.Warnw("Failed to stop watcher.",
		"error", err,
	)
}
