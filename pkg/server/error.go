// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"errors"
)

var (
	ErrListenMissing   = errors.New("listen address is missing.")
	ErrManagerMissing  = errors.New("session manager is missing.")
	ErrEventsMissing   = errors.New("events handler is missing.")
	ErrSelectorMissing = errors.New("strategy selector is missing.")
	ErrLoggerMissing   = errors.New("logger is missing.")
	ErrPathMissing     = errors.New("path is missing.")
)
