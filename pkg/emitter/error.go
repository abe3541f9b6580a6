// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package emitter

import (
	"errors"
	"fmt"
)

var (
	ErrLoggerMissing   = errors.New("logger is missing.")
	ErrQueueTooSmall   = errors.New("client queue size must be positive.")
	ErrBadWriteTimeout = errors.New("write timeout must be positive.")
	ErrHubClosed       = errors.New("hub is closed.")
	ErrWriterMissing   = errors.New("writer is missing.")
	ErrEmptyBatch      = errors.New("change batch is empty.")
)

// ErrClientTooSlow is reported by Hub.Emit for a client
// that was disconnected because its send queue was full.
type ErrClientTooSlow struct {
	Remote string
}

func (e *ErrClientTooSlow) Error() string {
	return fmt.Sprintf("client %s is too slow, disconnected.", e.Remote)
}
