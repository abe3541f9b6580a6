// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	for i := range c.Workspaces {
		var abs string
		abs, err = filepath.Abs(c.Workspaces[i])
		if err != nil {
			Wrap(&err, "resolve workspace %s", c.Workspaces[i])
			return
		}
		c.Workspaces[i] = abs
	}

	for i := range c.Classify.TransientExtensions {
		c.Classify.TransientExtensions[i] = strings.ToLower(
			c.Classify.TransientExtensions[i],
		)
	}

	for i := range c.Classify.TransientPrefixes {
		c.Classify.TransientPrefixes[i] = strings.ToLower(
			c.Classify.TransientPrefixes[i],
		)
	}

	if len(c.Classify.CloudSyncMarkers) == 0 {
		c.log.Warnw("No cloud sync markers in config, polling will never be selected by path.")
	}

	if len(c.Filter.IgnoredNames) == 0 {
		c.log.Warnw("No ignored names in config.")
	}

	return
}
