// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/black-desk/lib/go/gomega-helper"
	"github.com/black-desk/wswatch/internal/tests/logger"
	. "github.com/black-desk/wswatch/pkg/fswatch/poll"
	"github.com/black-desk/wswatch/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const interval = 20 * time.Millisecond

func haveEvent(op types.Op, path string) OmegaMatcher {
	return And(
		HaveField("Op", op),
		HaveField("Paths", Equal([]string{path})),
		HaveField("Err", BeNil()),
	)
}

var _ = Describe("Polling watcher", func() {
	var (
		root   string
		w      *Watcher
		events <-chan types.RawEvent
		err    error
	)

	start := func(compare bool) {
		log, logErr := logger.ProvideLogger()
		Expect(logErr).To(Succeed())

		w, err = New(
			WithInterval(interval),
			WithCompareContents(compare),
			WithLogger(log),
		)
		Expect(err).To(Succeed())

		events, err = w.Start(root)
		Expect(err).To(Succeed())
	}

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(root, "existing.txt"), []byte("v1"), 0o644)).To(Succeed())
	})

	AfterEach(func() {
		if w != nil {
			Expect(w.Stop()).To(Succeed())
			Eventually(events).Should(BeClosed())
		}
		w = nil
	})

	Context("with content comparison", func() {
		BeforeEach(func() {
			start(true)
		})

		It("should not report files that existed before start", func() {
			Consistently(events, 5*interval).ShouldNot(Receive())
		})

		It("should report created files", func() {
			path := filepath.Join(root, "new.txt")
			Expect(os.WriteFile(path, []byte("hello"), 0o644)).To(Succeed())

			Eventually(events).Should(Receive(haveEvent(types.OpCreate, path)))
		})

		It("should report created directories and their files", func() {
			dir := filepath.Join(root, "src")
			Expect(os.Mkdir(dir, 0o755)).To(Succeed())
			path := filepath.Join(dir, "a.ts")
			Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())

			var got []string
			Eventually(func() []string {
				select {
				case event := <-events:
					got = append(got, event.Paths...)
				default:
				}
				return got
			}).Should(ContainElements(dir, path))
		})

		It("should report content changes", func() {
			path := filepath.Join(root, "existing.txt")
			Expect(os.WriteFile(path, []byte("version two"), 0o644)).To(Succeed())

			Eventually(events).Should(Receive(haveEvent(types.OpWrite, path)))
		})

		It("should report changes that keep the size", func() {
			path := filepath.Join(root, "existing.txt")
			Expect(os.WriteFile(path, []byte("v2"), 0o644)).To(Succeed())
			later := time.Now().Add(time.Hour)
			Expect(os.Chtimes(path, later, later)).To(Succeed())

			Eventually(events).Should(Receive(haveEvent(types.OpWrite, path)))
		})

		It("should not report timestamp-only changes", func() {
			path := filepath.Join(root, "existing.txt")
			later := time.Now().Add(time.Hour)
			Expect(os.Chtimes(path, later, later)).To(Succeed())

			Consistently(events, 10*interval).ShouldNot(Receive())
		})

		It("should report removed files", func() {
			path := filepath.Join(root, "existing.txt")
			Expect(os.Remove(path)).To(Succeed())

			Eventually(events).Should(Receive(haveEvent(types.OpRemove, path)))
		})

		It("should report a vanished root once", func() {
			Expect(os.RemoveAll(root)).To(Succeed())

			Eventually(events).Should(Receive(HaveField("Err", HaveOccurred())))
			Consistently(events, 10*interval).ShouldNot(Receive())
		})
	})

	Context("without content comparison", func() {
		BeforeEach(func() {
			start(false)
		})

		It("should report timestamp-only changes", func() {
			path := filepath.Join(root, "existing.txt")
			later := time.Now().Add(time.Hour)
			Expect(os.Chtimes(path, later, later)).To(Succeed())

			Eventually(events).Should(Receive(haveEvent(types.OpWrite, path)))
		})
	})

	Context("start", func() {
		It("should fail on a missing root", func() {
			w, err = New(WithInterval(interval))
			Expect(err).To(Succeed())

			_, err = w.Start(filepath.Join(root, "missing"))
			Expect(err).To(MatchErr(os.ErrNotExist))

			Expect(w.Stop()).To(Succeed())
			w = nil
		})

		It("should fail on a regular file", func() {
			w, err = New(WithInterval(interval))
			Expect(err).To(Succeed())

			_, err = w.Start(filepath.Join(root, "existing.txt"))
			Expect(err).To(MatchErr(ErrNotDirectory))

			Expect(w.Stop()).To(Succeed())
			w = nil
		})

		It("should fail when started twice", func() {
			start(true)

			_, err = w.Start(root)
			Expect(err).To(MatchErr(ErrAlreadyStarted))
		})

		It("should reject a non-positive interval", func() {
			_, err = New(WithInterval(0))
			Expect(err).To(MatchErr(ErrBadInterval))
		})
	})

	Context("stop without start", func() {
		It("should close the event channel", func() {
			w, err = New()
			Expect(err).To(Succeed())

			Expect(w.Stop()).To(Succeed())
			Expect(w.Stop()).To(Succeed())
			w = nil
		})
	})
})

func TestPoll(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Polling Watcher Suite")
}
