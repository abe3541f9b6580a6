// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import "time"

const SignalFSChange = "fs-change"

// Signal is what a UI client receives for one ChangeBatch.
type Signal struct {
	Event   string   `json:"event"`
	Root    string   `json:"root"`
	Payload []string `json:"payload"`
}

func NewFSChangeSignal(batch *ChangeBatch) *Signal {
	return &Signal{
		Event:   SignalFSChange,
		Root:    batch.Root,
		Payload: batch.Paths,
	}
}

type SessionInfo struct {
	ID        string        `json:"id"`
	Root      string        `json:"root"`
	Strategy  string        `json:"strategy"`
	Interval  time.Duration `json:"interval,omitempty"`
	StartedAt time.Time     `json:"started_at"`
}
