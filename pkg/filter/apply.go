// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/classify"
	"github.com/black-desk/wswatch/pkg/types"
	ignore "github.com/sabhiram/go-gitignore"
)

// Apply returns the paths of event that pass every rule, in event order.
// It is a pure function of the event and the pipeline,
// so applying it twice gives the same batch.
func (p *Pipeline) Apply(event *types.RawEvent) (ret *types.ChangeBatch) {
	ret = &types.ChangeBatch{Root: p.root}

	if event == nil || event.Err != nil {
		return
	}

	for i := range event.Paths {
		path, ok := p.Keep(event.Paths[i])
		if !ok {
			continue
		}

		ret.Paths = append(ret.Paths, path)
	}

	return
}

// Keep decides about a single path. It returns the cleaned path
// and whether it should be shown to the user.
func (p *Pipeline) Keep(raw string) (path string, ok bool) {
	if !utf8.ValidString(raw) {
		p.log.Debugw("Drop path which is not valid UTF-8.",
			"path", []byte(raw),
		)
		return
	}

	path = filepath.Clean(raw)

	components, under := classify.RelComponents(path, p.root)
	if !under {
		return
	}

	for i := range components {
		if _, ignored := p.ignoredNames[components[i]]; ignored {
			return
		}
	}

	if p.classifier.IsInsideMetadataDir(path, p.root) {
		return
	}

	if p.classifier.IsTransientArtifact(path) {
		return
	}

	if p.gitignore != nil &&
		p.gitignore.MatchesPath(strings.Join(components, "/")) {
		return
	}

	ok = true
	return
}

func (p *Pipeline) loadGitignore() (err error) {
	defer Wrap(&err, "load .gitignore of %s", p.root)

	gi, err := ignore.CompileIgnoreFile(filepath.Join(p.root, ".gitignore"))
	if errors.Is(err, fs.ErrNotExist) {
		p.log.Debugw("No .gitignore in workspace root.",
			"root", p.root,
		)
		err = nil
		return
	}
	if err != nil {
		return
	}

	p.gitignore = gi
	return
}
