// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"time"

	"github.com/black-desk/wswatch/pkg/types"
)

func (w *Watcher) run() {
	defer close(w.eventsOut)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			if !w.poll() {
				return
			}
		}
	}
}

// poll returns false once the watcher is stopped.
func (w *Watcher) poll() bool {
	next, err := w.scan(w.snapshot)
	if err != nil {
		// Report a failing root once, not on every tick.
		if err.Error() == w.lastErr {
			return true
		}
		w.lastErr = err.Error()
		return w.send(types.RawEvent{Err: err})
	}
	w.lastErr = ""

	events := diff(w.snapshot, next, w.compareContents)
	w.snapshot = next

	for i := range events {
		if !w.send(events[i]) {
			return false
		}
	}

	return true
}

func (w *Watcher) send(event types.RawEvent) bool {
	w.log.Debugw("New polling filesystem event.",
		"op", event.Op,
		"paths", event.Paths,
		"error", event.Err,
	)

	select {
	case <-w.done:
		return false
	case w.eventsOut <- event:
		return true
	}
}
