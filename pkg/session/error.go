// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"errors"
)

var (
	ErrRootMissing    = errors.New("workspace root is missing.")
	ErrWatcherMissing = errors.New("filesystem watcher is missing.")
	ErrFilterMissing  = errors.New("filter is missing.")
	ErrEmitterMissing = errors.New("emitter is missing.")
	ErrLoggerMissing  = errors.New("logger is missing.")
	ErrAlreadyRunning = errors.New("session is already running.")
)
