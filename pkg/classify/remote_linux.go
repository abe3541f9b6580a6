// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package classify

import (
	"golang.org/x/sys/unix"
)

// Magic numbers from statfs(2).
var remoteFSMagics = map[int64]string{
	unix.NFS_SUPER_MAGIC:  "nfs",
	unix.SMB_SUPER_MAGIC:  "smb",
	unix.SMB2_SUPER_MAGIC: "smb2",
	unix.CIFS_SUPER_MAGIC: "cifs",
	unix.FUSE_SUPER_MAGIC: "fuse",
	unix.V9FS_MAGIC:       "9p",
	unix.AFS_SUPER_MAGIC:  "afs",
	unix.CODA_SUPER_MAGIC: "coda",
}

// IsRemoteFS reports whether path lives on a network or FUSE filesystem,
// where inotify does not see changes made by other machines
// or by the sync client. Errors are treated as "not remote".
func IsRemoteFS(path string) bool {
	_, ok := RemoteFSType(path)
	return ok
}

func RemoteFSType(path string) (name string, ok bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return "", false
	}

	name, ok = remoteFSMagics[int64(st.Type)]
	return
}
