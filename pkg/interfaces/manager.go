// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

import (
	"github.com/black-desk/wswatch/pkg/types"
)

type SessionManager interface {
	Watch(root string) (*types.SessionInfo, error)
	Unwatch(root string) error
	Sessions() []*types.SessionInfo
}
