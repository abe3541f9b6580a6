// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/types"
)

// Start takes the first snapshot of root synchronously,
// so a missing or unreadable root is reported here.
func (w *Watcher) Start(root string) (ret <-chan types.RawEvent, err error) {
	defer Wrap(&err, "start polling watcher on %s", root)

	if root == "" {
		err = ErrRootMissing
		return
	}

	alreadyStarted := true
	w.startOnce.Do(func() { alreadyStarted = false })
	if alreadyStarted {
		err = ErrAlreadyStarted
		return
	}

	var info os.FileInfo
	info, err = os.Stat(root)
	if err != nil {
		return
	}

	if !info.IsDir() {
		err = ErrNotDirectory
		return
	}

	w.root = root

	w.snapshot, err = w.scan(nil)
	if err != nil {
		return
	}

	w.started = true
	w.wg.Go(w.run)

	w.log.Infow("Polling filesystem watcher started.",
		"root", root,
		"entries", len(w.snapshot),
		"interval", w.interval,
		"compare contents", w.compareContents,
	)

	ret = w.eventsOut
	return
}

func (w *Watcher) Stop() (err error) {
	w.stopOnce.Do(func() {
		w.startOnce.Do(func() {})

		close(w.done)
		w.wg.Wait()

		if !w.started {
			close(w.eventsOut)
		}

		w.log.Debugw("Polling filesystem watcher stopped.",
			"root", w.root,
		)
	})

	return
}
