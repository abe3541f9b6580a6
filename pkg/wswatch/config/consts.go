// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

const (
	DefaultConfig = `
version: 1
listen: 127.0.0.1:7341
workspaces: []
rewatch: replace
channel-buffer: 64
polling:
  interval: 2s
  compare-contents: true
  detect-remote-fs: false
classify:
  cloud-sync-markers:
    - onedrive
    - sharepoint
  metadata-dir: .git
  transient-extensions:
    - tmp
    - crdownload
    - partial
  transient-prefixes:
    - goutput
filter:
  ignored-names:
    - node_modules
    - .git
    - dist
    - build
    - .next
  gitignore: false
`
)
