// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import (
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/rjeczalik/notify"
)

func (w *Watcher) forward() {
	defer close(w.eventsOut)

	for {
		select {
		case <-w.done:
			return
		case info := <-w.eventsIn:
			event := types.RawEvent{
				Op:    convertOp(info.Event()),
				Paths: []string{info.Path()},
			}

			w.log.Debugw("New native filesystem event.",
				"op", event.Op,
				"path", info.Path(),
			)

			select {
			case <-w.done:
				return
			case w.eventsOut <- event:
			}
		}
	}
}

func convertOp(e notify.Event) types.Op {
	switch {
	case e&notify.Create != 0:
		return types.OpCreate
	case e&notify.Remove != 0:
		return types.OpRemove
	case e&notify.Rename != 0:
		return types.OpRename
	case e&notify.Write != 0:
		return types.OpWrite
	}
	return types.OpOther
}
