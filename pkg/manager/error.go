// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import (
	"errors"
	"fmt"
)

var (
	ErrRootMissing     = errors.New("workspace root is missing.")
	ErrSelectorMissing = errors.New("strategy selector is missing.")
	ErrFactoryMissing  = errors.New("watcher factory is missing.")
	ErrEmitterMissing  = errors.New("emitter is missing.")
	ErrLoggerMissing   = errors.New("logger is missing.")
	ErrManagerClosed   = errors.New("session manager is closed.")
)

type ErrSessionNotFound struct {
	Root string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("no session is watching %s.", e.Root)
}

type ErrUnknownPolicy struct {
	Policy Policy
}

func (e *ErrUnknownPolicy) Error() string {
	return fmt.Sprintf("unknown re-watch policy %q.", string(e.Policy))
}
