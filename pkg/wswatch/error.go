// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wswatch

import (
	"errors"
)

var (
	ErrConfigMissing  = errors.New("config is missing.")
	ErrLoggerMissing  = errors.New("logger is missing.")
	ErrManagerMissing = errors.New("session manager is missing.")
	ErrServerMissing  = errors.New("http server is missing.")
)
