// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wswatch

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

// Run starts the session manager and the HTTP server.
// When either fails the other one is cancelled.
func (w *WSWatch) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running wswatch daemon")
	defer w.close()

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError()

	p.Go(w.runManager)
	p.Go(w.runServer)

	return p.Wait()
}
