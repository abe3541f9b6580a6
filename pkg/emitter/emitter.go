// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package emitter delivers filtered change batches
// to the user interface as fs-change signals.
package emitter

import (
	"context"

	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/types"
)

var (
	_ interfaces.Emitter = (*Hub)(nil)
	_ interfaces.Emitter = (*Writer)(nil)
	_ interfaces.Emitter = Func(nil)
)

// Func adapts an ordinary function to the Emitter interface.
type Func func(ctx context.Context, batch *types.ChangeBatch) error

func (f Func) Emit(ctx context.Context, batch *types.ChangeBatch) error {
	return f(ctx, batch)
}
