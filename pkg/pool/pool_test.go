// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pool_test

import (
	"bytes"
	"testing"

	. "github.com/black-desk/wswatch/pkg/pool"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Typed pool", func() {
	It("should create values with the constructor", func() {
		p := New(func() *bytes.Buffer { return new(bytes.Buffer) }, nil)
		Expect(p.Get()).NotTo(BeNil())
	})

	It("should apply the put hook before pooling", func() {
		var reset int
		p := New(
			func() *bytes.Buffer { return new(bytes.Buffer) },
			func(b *bytes.Buffer) *bytes.Buffer {
				reset++
				b.Reset()
				return b
			},
		)

		b := p.Get()
		b.WriteString("dirty")
		p.Put(b)

		Expect(reset).To(Equal(1))
		Expect(b.Len()).To(BeZero())
	})
})

func TestPool(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pool Suite")
}
