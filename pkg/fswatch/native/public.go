// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import (
	"os"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/rjeczalik/notify"
)

func (w *Watcher) Start(root string) (ret <-chan types.RawEvent, err error) {
	defer Wrap(&err, "start native watcher on %s", root)

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

	err = notify.Watch(
		filepath.Join(root, "..."),
		w.eventsIn,
		notify.Create, notify.Write, notify.Remove, notify.Rename,
	)
	if err != nil {
		return
	}

	w.root = root
	w.started = true
	w.wg.Go(w.forward)

	w.log.Infow("Native filesystem watcher started.",
		"root", root,
	)

	ret = w.eventsOut
	return
}

func (w *Watcher) Stop() (err error) {
	w.stopOnce.Do(func() {
		// Close eventsOut even if Start was never called,
		// so nobody waits on it forever.
		w.startOnce.Do(func() {})

		if w.started {
			notify.Stop(w.eventsIn)
		}

		close(w.done)
		w.wg.Wait()

		if !w.started {
			close(w.eventsOut)
		}

		w.log.Debugw("Native filesystem watcher stopped.",
			"root", w.root,
		)
	})

	return
}
