// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

import (
	"context"

	"github.com/black-desk/wswatch/pkg/types"
)

type Emitter interface {
	// Emit delivers one non-empty batch to the UI boundary.
	Emit(ctx context.Context, batch *types.ChangeBatch) error
}
