// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import "errors"

var (
	ErrLoggerMissing  = errors.New("logger is missing.")
	ErrRootMissing    = errors.New("root is missing.")
	ErrNotDirectory   = errors.New("root is not a directory.")
	ErrAlreadyStarted = errors.New("watcher has been started.")
	ErrBadInterval    = errors.New("poll interval must be positive.")
	ErrBufferTooSmall = errors.New("buffer size must not be negative.")
)
