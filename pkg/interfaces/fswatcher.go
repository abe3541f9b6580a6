// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

import (
	"github.com/black-desk/wswatch/pkg/types"
)

// FSWatcher is a filesystem watcher bound to at most one root.
type FSWatcher interface {
	// Start subscribes to changes under root recursively.
	// It returns after the subscription is established.
	// The returned channel is closed after Stop.
	Start(root string) (<-chan types.RawEvent, error)
	// Stop releases the underlying resources. It is safe to call Stop
	// more than once and on a watcher that was never started.
	Stop() error
}
