// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Listen is the address of the HTTP boundary UI clients talk to.
	Listen string `yaml:"listen" validate:"required,hostname_port"`
	// Workspaces are watched as soon as the daemon starts.
	Workspaces []string `yaml:"workspaces" validate:"dive,required"`
	// Rewatch decides what happens to the sessions already watching a root
	// when that root is requested again.
	Rewatch RewatchPolicy `yaml:"rewatch" validate:"required,oneof=replace stack"`
	// ChannelBuffer is the capacity of the channel between a filesystem
	// watcher and its session.
	ChannelBuffer int `yaml:"channel-buffer" validate:"gte=1"`

	Polling  *Polling  `yaml:"polling" validate:"required"`
	Classify *Classify `yaml:"classify" validate:"required"`
	Filter   *Filter   `yaml:"filter" validate:"required"`

	log *zap.SugaredLogger `yaml:"-"`
}

type RewatchPolicy string

const (
	RewatchReplace RewatchPolicy = "replace"
	RewatchStack   RewatchPolicy = "stack"
)

type Polling struct {
	Interval time.Duration `yaml:"interval" validate:"min=100ms"`
	// CompareContents makes the poller hash file contents,
	// so files rewritten by a sync client without real changes
	// are not reported.
	CompareContents bool `yaml:"compare-contents"`
	// DetectRemoteFS selects polling for roots on network or FUSE mounts,
	// too.
	DetectRemoteFS bool `yaml:"detect-remote-fs"`
}

type Classify struct {
	CloudSyncMarkers    []string `yaml:"cloud-sync-markers" validate:"dive,required"`
	MetadataDir         string   `yaml:"metadata-dir" validate:"required,excludesall=/\\"`
	TransientExtensions []string `yaml:"transient-extensions" validate:"dive,required,excludes=."`
	TransientPrefixes   []string `yaml:"transient-prefixes" validate:"dive,required,excludes=."`
}

type Filter struct {
	IgnoredNames []string `yaml:"ignored-names" validate:"dive,required,excludesall=/\\"`
	// Gitignore drops paths matched by the .gitignore
	// at the top of the workspace root.
	Gitignore bool `yaml:"gitignore"`
}
