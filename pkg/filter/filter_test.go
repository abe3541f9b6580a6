// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package filter_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/black-desk/wswatch/internal/test/ginkgo-helper"
	"github.com/black-desk/wswatch/pkg/classify"
	. "github.com/black-desk/wswatch/pkg/filter"
	"github.com/black-desk/wswatch/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Filter pipeline", func() {
	var p *Pipeline

	BeforeEach(func() {
		var err error
		p, err = New(WithRoot("/ws"))
		Expect(err).To(Succeed())
	})

	It("should only keep interesting paths under the root", func() {
		batch := p.Apply(&types.RawEvent{
			Op: types.OpWrite,
			Paths: []string{
				"/ws/src/a.ts",
				"/ws/node_modules/x.js",
				"/ws/.git/HEAD",
				"/ws/dist/out.js",
				"/tmp/outside.txt",
			},
		})
		Expect(batch.Root).To(Equal("/ws"))
		Expect(batch.Paths).To(Equal([]string{"/ws/src/a.ts"}))
	})

	It("should keep the order of surviving paths", func() {
		batch := p.Apply(&types.RawEvent{
			Paths: []string{"/ws/b", "/ws/.next/x", "/ws/a", "/ws/c/d"},
		})
		Expect(batch.Paths).To(Equal([]string{"/ws/b", "/ws/a", "/ws/c/d"}))
	})

	It("should be idempotent", func() {
		event := &types.RawEvent{
			Paths: []string{"/ws/a.go", "/ws/build/x", "/ws/b.tmp", "/ws/c/d.go"},
		}
		first := p.Apply(event)
		second := p.Apply(event)
		Expect(second).To(Equal(first))

		again := p.Apply(&types.RawEvent{Paths: first.Paths})
		Expect(again.Paths).To(Equal(first.Paths))
	})

	It("should produce an empty batch for failed events", func() {
		batch := p.Apply(&types.RawEvent{
			Paths: []string{"/ws/a.go"},
			Err:   errors.New("overflow"),
		})
		Expect(batch.Empty()).To(BeTrue())
	})

	It("should produce an empty batch when nothing survives", func() {
		batch := p.Apply(&types.RawEvent{
			Paths: []string{"/ws/.git/index", "/ws/x.partial"},
		})
		Expect(batch.Empty()).To(BeTrue())
	})

	ContextTable("deciding about %s (expect %t)", func(path string, expect bool) {
		It(fmt.Sprintf("should report %t", expect), func() {
			_, ok := p.Keep(path)
			Expect(ok).To(Equal(expect))
		})
	},
		ContextTableEntry("/ws/download.crdownload", false),
		ContextTableEntry("/ws/notes.txt", true),
		ContextTableEntry("/ws/.gitignore", true),
		ContextTableEntry("/ws/src/.git/config", false),
		ContextTableEntry("/ws/pkg/node_modules/lodash/index.js", false),
		ContextTableEntry("/ws/pkg/build", false),
		ContextTableEntry("/ws/builder/main.go", true),
		ContextTableEntry("/ws/.gtk.goutputstream-1A2B3C", false),
		ContextTableEntry("/ws", false),
		ContextTableEntry("/ws/", false),
		ContextTableEntry("/wsx/a.go", false),
		ContextTableEntry("/ws/../etc/passwd", false),
		ContextTableEntry("/ws/src/../lib/a.go", true),
		ContextTableEntry("/ws/bad\xffname", false),
	)

	It("should return cleaned paths", func() {
		path, ok := p.Keep("/ws/src//./a.go")
		Expect(ok).To(BeTrue())
		Expect(path).To(Equal("/ws/src/a.go"))
	})

	Context("with custom policy tables", func() {
		BeforeEach(func() {
			var err error
			p, err = New(
				WithRoot("/ws"),
				WithIgnoredNames([]string{"target"}),
				WithClassifier(classify.New(
					classify.WithMetadataDir(".hg"),
					classify.WithTransientExtensions([]string{"swp"}),
				)),
			)
			Expect(err).To(Succeed())
		})

		It("should use them", func() {
			batch := p.Apply(&types.RawEvent{Paths: []string{
				"/ws/target/debug/app",
				"/ws/.hg/store",
				"/ws/.main.go.swp",
				"/ws/node_modules/x.js",
				"/ws/a.tmp",
			}})
			Expect(batch.Paths).To(Equal([]string{
				"/ws/node_modules/x.js",
				"/ws/a.tmp",
			}))
		})
	})

	Context("with gitignore enabled", func() {
		var root string

		BeforeEach(func() {
			root = GinkgoT().TempDir()
		})

		It("should drop ignored paths", func() {
			Expect(os.WriteFile(
				filepath.Join(root, ".gitignore"),
				[]byte("*.log\ncoverage/\n"),
				0o644,
			)).To(Succeed())

			var err error
			p, err = New(WithRoot(root), WithGitignore(true))
			Expect(err).To(Succeed())

			batch := p.Apply(&types.RawEvent{Paths: []string{
				filepath.Join(root, "app.log"),
				filepath.Join(root, "coverage", "index.html"),
				filepath.Join(root, "main.go"),
			}})
			Expect(batch.Paths).To(Equal([]string{filepath.Join(root, "main.go")}))
		})

		It("should work without a .gitignore", func() {
			var err error
			p, err = New(WithRoot(root), WithGitignore(true))
			Expect(err).To(Succeed())

			_, ok := p.Keep(filepath.Join(root, "app.log"))
			Expect(ok).To(BeTrue())
		})
	})
})

var _ = Describe("Filter pipeline options", func() {
	It("should require a root", func() {
		_, err := New()
		Expect(err).To(MatchErr(ErrRootMissing))
	})

	It("should require an absolute root", func() {
		_, err := New(WithRoot("ws"))
		target := new(*ErrRootNotAbsolute)
		Expect(errors.As(err, target)).To(BeTrue())
		Expect((*target).Root).To(Equal("ws"))
	})
})

func TestFilter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Filter Suite")
}
