// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Opt func(*options) (*options, error)

type options struct {
	content []byte
	log     *zap.SugaredLogger
}

// New decodes DefaultConfig, then the given content on top of it,
// and validates the result.
func New(opts ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "create configuration")

	o := &options{}
	for i := range opts {
		o, err = opts[i](o)
		if err != nil {
			return
		}
	}

	if o.content == nil {
		err = ErrContentMissing
		return
	}

	return Load(o.content, o.log)
}

func Load(content []byte, log *zap.SugaredLogger) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	cfg := &Config{}
	cfg.log = log
	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	err = yaml.Unmarshal([]byte(DefaultConfig), cfg)
	if err != nil {
		Wrap(&err, "unmarshal default configuration")
		return
	}

	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		Wrap(&err, "unmarshal configuration")
		return
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg
	return
}

func WithContent(content []byte) Opt {
	return func(o *options) (ret *options, err error) {
		o.content = content
		ret = o
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(o *options) (ret *options, err error) {
		o.log = log
		ret = o
		return
	}
}
