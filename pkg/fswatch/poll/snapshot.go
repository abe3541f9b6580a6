// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/pool"
	"github.com/black-desk/wswatch/pkg/types"
	"github.com/cespare/xxhash/v2"
)

type entry struct {
	isDir   bool
	size    int64
	modTime time.Time
	digest  uint64
	hashed  bool
}

type snapshot map[string]entry

var (
	digests = pool.New(
		xxhash.New,
		func(d *xxhash.Digest) *xxhash.Digest {
			d.Reset()
			return d
		},
	)
	buffers = pool.New(
		func() *[]byte {
			b := make([]byte, 32*1024)
			return &b
		},
		nil,
	)
)

// scan walks the root. Entries of prev whose size and modification time
// did not change keep their digest instead of being hashed again.
func (w *Watcher) scan(prev snapshot) (ret snapshot, err error) {
	defer Wrap(&err, "scan %s", w.root)

	next := make(snapshot, len(prev))

	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return err
			}

			if !errors.Is(err, fs.ErrNotExist) {
				w.log.Debugw("Skip unreadable path.",
					"path", path,
					"error", err,
				)
			}

			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if path == w.root {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Removed between readdir and lstat.
			return nil
		}

		e := entry{
			isDir:   d.IsDir(),
			size:    info.Size(),
			modTime: info.ModTime(),
		}

		if !w.compareContents || !info.Mode().IsRegular() {
			next[path] = e
			return nil
		}

		if old, ok := prev[path]; ok && old.hashed &&
			old.size == e.size && old.modTime.Equal(e.modTime) {
			e.digest = old.digest
			e.hashed = true
			next[path] = e
			return nil
		}

		digest, hashErr := hashFile(path)
		if hashErr == nil {
			e.digest = digest
			e.hashed = true
		} else if !errors.Is(hashErr, fs.ErrNotExist) {
			w.log.Debugw("Failed to hash file.",
				"path", path,
				"error", hashErr,
			)
		}

		next[path] = e
		return nil
	})
	if err != nil {
		return
	}

	ret = next
	return
}

func hashFile(path string) (ret uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	d := digests.Get()
	defer digests.Put(d)

	buf := buffers.Get()
	defer buffers.Put(buf)

	_, err = io.CopyBuffer(d, f, *buf)
	if err != nil {
		return
	}

	ret = d.Sum64()
	return
}

// diff returns one event per changed path, ordered by path.
func diff(prev, next snapshot, compareContents bool) (ret []types.RawEvent) {
	paths := make([]string, 0, len(next))

	for path := range next {
		paths = append(paths, path)
	}
	for path := range prev {
		if _, ok := next[path]; !ok {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)

	for _, path := range paths {
		old, hadOld := prev[path]
		cur, hasCur := next[path]

		var op types.Op
		switch {
		case !hadOld:
			op = types.OpCreate
		case !hasCur:
			op = types.OpRemove
		case changed(old, cur, compareContents):
			op = types.OpWrite
		default:
			continue
		}

		ret = append(ret, types.RawEvent{
			Op:    op,
			Paths: []string{path},
		})
	}

	return
}

func changed(old, cur entry, compareContents bool) bool {
	if old.isDir != cur.isDir {
		return true
	}

	if cur.isDir {
		return false
	}

	if old.size != cur.size {
		return true
	}

	if old.modTime.Equal(cur.modTime) {
		return false
	}

	if compareContents && old.hashed && cur.hashed {
		return old.digest != cur.digest
	}

	return true
}
