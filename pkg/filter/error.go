// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"errors"
	"fmt"
)

var ErrRootMissing = errors.New("root is missing.")

type ErrRootNotAbsolute struct {
	Root string
}

func (e *ErrRootNotAbsolute) Error() string {
	return fmt.Sprintf("root must be an absolute path, but we got %q.", e.Root)
}
