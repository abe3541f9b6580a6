// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package classify

import (
	"path/filepath"
	"strings"
)

// RelComponents splits the part of path below root into its components.
// ok is false when path is not a strict descendant of root.
// Both paths are cleaned first.
func RelComponents(path, root string) (components []string, ok bool) {
	path = filepath.Clean(path)
	root = filepath.Clean(root)

	var rel string
	if root == string(filepath.Separator) {
		rel = strings.TrimPrefix(path, root)
		if rel == path {
			return nil, false
		}
	} else {
		if !strings.HasPrefix(path, root+string(filepath.Separator)) {
			return nil, false
		}
		rel = path[len(root)+1:]
	}

	if rel == "" {
		return nil, false
	}

	return strings.Split(rel, string(filepath.Separator)), true
}

// IsDescendant reports whether path is strictly below root.
func IsDescendant(path, root string) bool {
	_, ok := RelComponents(path, root)
	return ok
}

// Extension returns the extension of the last path element without the
// leading dot. A leading dot does not start an extension,
// so ".gitignore" has none.
func Extension(path string) (ext string, ok bool) {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return "", false
	}

	ext = base[idx+1:]
	if ext == "" {
		return "", false
	}

	return ext, true
}
