// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wswatch

import (
	"context"
)

func (w *WSWatch) runManager(ctx context.Context) (err error) {
	defer w.log.Debugw("Session manager exited.")

	w.log.Debugw("Start session manager.")

	err = w.manager.Run(ctx)
	if err != nil {
		return
	}

	return ctx.Err()
}

func (w *WSWatch) runServer(ctx context.Context) (err error) {
	defer w.log.Debugw("HTTP server exited.")

	w.log.Debugw("Start HTTP server.")

	err = w.server.Run(ctx)
	if err != nil {
		return
	}

	return ctx.Err()
}

func (w *WSWatch) close() {
	for i := range w.closers {
		w.closers[i].Close()
	}
}
