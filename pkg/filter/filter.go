// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package filter reduces raw watcher notifications
// to the paths worth showing to the user.
package filter

import (
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/classify"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

var DefaultIgnoredNames = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	".next",
}

// Pipeline is bound to one workspace root.
// It holds no mutable state after New returns.
type Pipeline struct {
	root         string
	classifier   *classify.Classifier
	ignoredNames map[string]struct{}
	gitignore    *ignore.GitIgnore
	useGitignore bool

	log *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Pipeline, err error) {
	defer Wrap(&err, "create filter pipeline")

	p := &Pipeline{}
	WithIgnoredNames(DefaultIgnoredNames)(p)

	for i := range opts {
		p, err = opts[i](p)
		if err != nil {
			return
		}
	}

	if p.root == "" {
		err = ErrRootMissing
		return
	}

	if p.classifier == nil {
		p.classifier = classify.Default()
	}

	if p.log == nil {
		p.log = zap.NewNop().Sugar()
	}

	if p.useGitignore {
		err = p.loadGitignore()
		if err != nil {
			return
		}
	}

	ret = p

	p.log.Debugw("Create a filter pipeline.",
		"root", p.root,
		"gitignore", p.gitignore != nil,
	)

	return
}

type Opt func(p *Pipeline) (ret *Pipeline, err error)

// WithRoot sets the containment boundary. It must be absolute.
func WithRoot(root string) Opt {
	return func(p *Pipeline) (ret *Pipeline, err error) {
		if root == "" {
			err = ErrRootMissing
			return
		}

		if !filepath.IsAbs(root) {
			err = &ErrRootNotAbsolute{Root: root}
			return
		}

		p.root = filepath.Clean(root)
		ret = p
		return
	}
}

func WithClassifier(c *classify.Classifier) Opt {
	return func(p *Pipeline) (ret *Pipeline, err error) {
		p.classifier = c
		ret = p
		return
	}
}

func WithIgnoredNames(names []string) Opt {
	return func(p *Pipeline) (ret *Pipeline, err error) {
		p.ignoredNames = make(map[string]struct{}, len(names))
		for i := range names {
			p.ignoredNames[names[i]] = struct{}{}
		}
		ret = p
		return
	}
}

// WithGitignore makes the pipeline drop paths matched by
// the .gitignore file at the top of the root, if there is one.
func WithGitignore(enable bool) Opt {
	return func(p *Pipeline) (ret *Pipeline, err error) {
		p.useGitignore = enable
		ret = p
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(p *Pipeline) (ret *Pipeline, err error) {
		p.log = log
		ret = p
		return
	}
}
