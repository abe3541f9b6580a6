// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package classify_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/black-desk/wswatch/internal/test/ginkgo-helper"
	"github.com/black-desk/wswatch/pkg/classify"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Path classifier", func() {
	ContextTable("cloud sync detection of %s (expect %t)", func(path string, expect bool) {
		It(fmt.Sprintf("should report %t", expect), func() {
			Expect(classify.IsCloudSyncPath(path)).To(Equal(expect))
		})
	},
		ContextTableEntry(`C:\Users\x\OneDrive\proj`, true),
		ContextTableEntry("/home/x/ONEDRIVE - Contoso/proj", true),
		ContextTableEntry("/Users/x/Library/CloudStorage/SharePoint-Team/docs", true),
		ContextTableEntry("/home/x/proj", false),
		ContextTableEntry("/home/x/drive/one", false),
	)

	Context("with custom markers", func() {
		It("should only match the configured markers", func() {
			c := classify.New(classify.WithCloudSyncMarkers([]string{"Dropbox"}))
			Expect(c.IsCloudSyncPath("/home/x/dropbox/proj")).To(BeTrue())
			Expect(c.IsCloudSyncPath("/home/x/OneDrive/proj")).To(BeFalse())
		})
	})

	ContextTable("metadata directory check of %s under %s (expect %t)",
		func(path string, root string, expect bool) {
			It(fmt.Sprintf("should report %t", expect), func() {
				Expect(classify.IsInsideMetadataDir(path, root)).To(Equal(expect))
			})
		},
		ContextTableEntry("/ws/.git/HEAD", "/ws", true),
		ContextTableEntry("/ws/.git", "/ws", true),
		ContextTableEntry("/ws/vendor/lib/.git/objects/ab/cdef", "/ws", true),
		ContextTableEntry("/ws/src/.gitignore", "/ws", false),
		ContextTableEntry("/ws/src/main.go", "/ws", false),
		ContextTableEntry("/other/.git/HEAD", "/ws", false),
		ContextTableEntry("/wsx/.git/HEAD", "/ws", false),
		// The root itself may live inside a repository.
		ContextTableEntry("/repo/.git/worktrees/ws/src/a.go", "/repo/.git/worktrees/ws", false),
	)

	ContextTable("transient artifact check of %s (expect %t)", func(path string, expect bool) {
		It(fmt.Sprintf("should report %t", expect), func() {
			Expect(classify.IsTransientArtifact(path)).To(Equal(expect))
		})
	},
		ContextTableEntry("/ws/download.crdownload", true),
		ContextTableEntry("/ws/download.CRDOWNLOAD", true),
		ContextTableEntry("/ws/a.tmp", true),
		ContextTableEntry("/ws/a.Tmp", true),
		ContextTableEntry("/ws/video.mp4.partial", true),
		ContextTableEntry("/ws/notes.goutputstream-8XK2Q1", true),
		ContextTableEntry("/ws/notes.txt", false),
		ContextTableEntry("/ws/Makefile", false),
		ContextTableEntry("/ws/.tmp", false),
		ContextTableEntry("/ws/archive.tmp.zip", false),
		ContextTableEntry("/ws/trailing.", false),
	)

	Context("with custom transient tables", func() {
		It("should normalize dots and case", func() {
			c := classify.New(
				classify.WithTransientExtensions([]string{".PART", ""}),
				classify.WithTransientPrefixes([]string{"~SYNC"}),
			)
			Expect(c.IsTransientArtifact("/ws/a.part")).To(BeTrue())
			Expect(c.IsTransientArtifact("/ws/a.~sync123")).To(BeTrue())
			Expect(c.IsTransientArtifact("/ws/a.tmp")).To(BeFalse())
		})
	})

	Context("metadata directory name", func() {
		It("should be configurable", func() {
			c := classify.New(classify.WithMetadataDir(".hg"))
			Expect(c.MetadataDir()).To(Equal(".hg"))
			Expect(c.IsInsideMetadataDir("/ws/.hg/store", "/ws")).To(BeTrue())
			Expect(c.IsInsideMetadataDir("/ws/.git/HEAD", "/ws")).To(BeFalse())
		})
	})

	Context("relative components", func() {
		It("should reject the root itself and siblings sharing a prefix", func() {
			_, ok := classify.RelComponents("/ws", "/ws")
			Expect(ok).To(BeFalse())
			_, ok = classify.RelComponents("/ws2/a", "/ws")
			Expect(ok).To(BeFalse())
		})

		It("should clean paths before comparing", func() {
			_, ok := classify.RelComponents("/ws/../etc/passwd", "/ws")
			Expect(ok).To(BeFalse())

			components, ok := classify.RelComponents("/ws/./src//a.ts", "/ws/")
			Expect(ok).To(BeTrue())
			Expect(components).To(Equal([]string{"src", "a.ts"}))
		})

		It("should handle the filesystem root", func() {
			root := string(filepath.Separator)
			components, ok := classify.RelComponents(filepath.Join(root, "a", "b"), root)
			Expect(ok).To(BeTrue())
			Expect(components).To(Equal([]string{"a", "b"}))
		})
	})

	Context("remote filesystem probe", func() {
		It("should treat paths it cannot stat as local", func() {
			Expect(classify.IsRemoteFS(filepath.Join(GinkgoT().TempDir(), "missing"))).To(BeFalse())
		})
	})

	Context("metadata detection at any depth", func() {
		It("should find the metadata directory however deep it is", func() {
			for depth := 0; depth < 16; depth++ {
				parts := []string{"/ws"}
				for i := 0; i < depth; i++ {
					parts = append(parts, fmt.Sprintf("d%d", i))
				}
				parts = append(parts, ".git", "refs", "heads", "main")
				path := strings.Join(parts, "/")
				Expect(classify.IsInsideMetadataDir(path, "/ws")).To(BeTrue(), path)
			}
		})
	})
})

func TestClassify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Path Classifier Suite")
}
