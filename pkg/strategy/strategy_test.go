// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package strategy_test

import (
	"fmt"
	"testing"
	"time"

	. "github.com/black-desk/wswatch/internal/test/ginkgo-helper"
	"github.com/black-desk/wswatch/pkg/classify"
	. "github.com/black-desk/wswatch/pkg/strategy"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Strategy selector", func() {
	ContextTable("select for %s (expect %s)", func(root string, expect Strategy) {
		It(fmt.Sprintf("should select %s", expect), func() {
			Expect(Select(root)).To(Equal(expect))
		})

		It("should select the same strategy every time", func() {
			first := Select(root)
			for i := 0; i < 10; i++ {
				Expect(Select(root)).To(Equal(first))
			}
		})
	},
		ContextTableEntry(`C:\Users\x\OneDrive\proj`, Polling(2*time.Second, true)),
		ContextTableEntry("/mnt/c/Users/x/onedrive - corp/proj", Polling(2*time.Second, true)),
		ContextTableEntry("/Users/x/SHAREPOINT/site", Polling(2*time.Second, true)),
		ContextTableEntry("/home/x/proj", Native()),
		ContextTableEntry("/", Native()),
	)

	Context("with custom polling parameters and markers", func() {
		var s *Selector

		BeforeEach(func() {
			s = NewSelector(
				WithClassifier(classify.New(
					classify.WithCloudSyncMarkers([]string{"dropbox"}),
				)),
				WithPolling(5*time.Second, false),
			)
		})

		It("should use them", func() {
			Expect(s.Select("/home/x/Dropbox/proj")).To(Equal(Polling(5*time.Second, false)))
			Expect(s.Select("/home/x/OneDrive/proj")).To(Equal(Native()))
		})
	})

	Context("with a remote filesystem probe", func() {
		var (
			s      *Selector
			probed []string
		)

		BeforeEach(func() {
			probed = nil
			s = NewSelector(WithRemoteFSProbe(func(path string) bool {
				probed = append(probed, path)
				return path == "/mnt/nfs/proj"
			}))
		})

		It("should poll roots the probe reports as remote", func() {
			Expect(s.Select("/mnt/nfs/proj")).To(Equal(Polling(DefaultPollInterval, true)))
			Expect(s.Select("/home/x/proj")).To(Equal(Native()))
		})

		It("should not probe roots already matched by markers", func() {
			Expect(s.Select("/home/x/OneDrive/proj").Kind).To(Equal(KindPolling))
			Expect(probed).To(BeEmpty())
		})
	})

	Context("strategy names", func() {
		It("should be readable", func() {
			Expect(Native().String()).To(Equal("native"))
			Expect(Polling(2*time.Second, true).String()).To(Equal(
				"polling(2s, compare contents: true)",
			))
		})
	})
})

func TestStrategy(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Strategy Selector Suite")
}
