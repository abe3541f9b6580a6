// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package classify

func IsRemoteFS(path string) bool {
	return false
}

func RemoteFSType(path string) (name string, ok bool) {
	return "", false
}
