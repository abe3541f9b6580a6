// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

import (
	"github.com/black-desk/wswatch/pkg/types"
)

type Filter interface {
	// Apply returns the paths of event worth showing to the user.
	// The returned batch may be empty but is never nil.
	Apply(event *types.RawEvent) *types.ChangeBatch
}
