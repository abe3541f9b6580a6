// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package classify answers questions about single paths:
// whether a path lives on cloud-synced storage,
// whether it is inside a version-control metadata directory,
// and whether it names a transient download or sync artifact.
//
// All predicates are pure and safe for concurrent use.
package classify

import (
	"strings"
)

type Classifier struct {
	cloudSyncMarkers    []string
	metadataDir         string
	transientExtensions map[string]struct{}
	transientPrefixes   []string
}

var (
	DefaultCloudSyncMarkers    = []string{"onedrive", "sharepoint"}
	DefaultMetadataDir         = ".git"
	DefaultTransientExtensions = []string{"tmp", "crdownload", "partial"}
	// goutputstream-* files are written by GIO while saving
	// into synced folders.
	DefaultTransientPrefixes = []string{"goutput"}
)

var defaultClassifier = New()

func Default() *Classifier {
	return defaultClassifier
}

func New(opts ...Opt) *Classifier {
	c := &Classifier{
		metadataDir: DefaultMetadataDir,
	}
	WithCloudSyncMarkers(DefaultCloudSyncMarkers)(c)
	WithTransientExtensions(DefaultTransientExtensions)(c)
	WithTransientPrefixes(DefaultTransientPrefixes)(c)

	for i := range opts {
		opts[i](c)
	}

	return c
}

type Opt func(c *Classifier)

func WithCloudSyncMarkers(markers []string) Opt {
	return func(c *Classifier) {
		c.cloudSyncMarkers = make([]string, 0, len(markers))
		for i := range markers {
			if markers[i] == "" {
				continue
			}
			c.cloudSyncMarkers = append(
				c.cloudSyncMarkers, strings.ToLower(markers[i]),
			)
		}
	}
}

func WithMetadataDir(name string) Opt {
	return func(c *Classifier) {
		if name == "" {
			return
		}
		c.metadataDir = name
	}
}

func WithTransientExtensions(exts []string) Opt {
	return func(c *Classifier) {
		c.transientExtensions = make(map[string]struct{}, len(exts))
		for i := range exts {
			ext := strings.ToLower(strings.TrimPrefix(exts[i], "."))
			if ext == "" {
				continue
			}
			c.transientExtensions[ext] = struct{}{}
		}
	}
}

func WithTransientPrefixes(prefixes []string) Opt {
	return func(c *Classifier) {
		c.transientPrefixes = make([]string, 0, len(prefixes))
		for i := range prefixes {
			if prefixes[i] == "" {
				continue
			}
			c.transientPrefixes = append(
				c.transientPrefixes, strings.ToLower(prefixes[i]),
			)
		}
	}
}

func (c *Classifier) MetadataDir() string {
	return c.metadataDir
}

// IsCloudSyncPath reports whether any cloud sync marker
// appears anywhere in path, ignoring case.
func (c *Classifier) IsCloudSyncPath(path string) bool {
	lower := strings.ToLower(path)
	for i := range c.cloudSyncMarkers {
		if strings.Contains(lower, c.cloudSyncMarkers[i]) {
			return true
		}
	}
	return false
}

// IsInsideMetadataDir reports whether any component of path below root
// is the metadata directory. Paths outside root are never inside.
func (c *Classifier) IsInsideMetadataDir(path, root string) bool {
	components, ok := RelComponents(path, root)
	if !ok {
		return false
	}

	for i := range components {
		if components[i] == c.metadataDir {
			return true
		}
	}
	return false
}

// IsTransientArtifact reports whether the extension of path
// marks a partial download or a sync temporary file.
func (c *Classifier) IsTransientArtifact(path string) bool {
	ext, ok := Extension(path)
	if !ok {
		return false
	}

	ext = strings.ToLower(ext)

	if _, found := c.transientExtensions[ext]; found {
		return true
	}

	for i := range c.transientPrefixes {
		if strings.HasPrefix(ext, c.transientPrefixes[i]) {
			return true
		}
	}

	return false
}

func IsCloudSyncPath(path string) bool {
	return defaultClassifier.IsCloudSyncPath(path)
}

func IsInsideMetadataDir(path, root string) bool {
	return defaultClassifier.IsInsideMetadataDir(path, root)
}

func IsTransientArtifact(path string) bool {
	return defaultClassifier.IsTransientArtifact(path)
}
