// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type Op uint8

const (
	OpOther  Op = iota // Other
	OpCreate           // Create
	OpWrite            // Write
	OpRemove           // Remove
	OpRename           // Rename
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -linecomment

// RawEvent is a notification as reported by a filesystem watcher.
// A non-nil Err means the watcher failed to deliver this notification.
type RawEvent struct {
	Op    Op
	Paths []string
	Err   error
}

// ChangeBatch holds the paths of one RawEvent that survived filtering.
type ChangeBatch struct {
	Root  string
	Paths []string
}

func (b *ChangeBatch) Empty() bool {
	return b == nil || len(b.Paths) == 0
}
