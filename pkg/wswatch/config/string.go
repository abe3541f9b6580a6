// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
)

func (p *Polling) String() string {
	return fmt.Sprintf("polling [ interval: %s | compare contents: %t ]",
		p.Interval, p.CompareContents)
}
