// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ginkgohelper_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	. "github.com/black-desk/wswatch/internal/test/ginkgo-helper"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHelper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ginkgo helper Suite")
}

var _ = Describe("ginkgo helper", func() {
	ContextTable("Given array %v", func(arg []int) {
		It("array[1]-array[0] should be equal to 1", func() {
			Expect(arg[1] - arg[0]).To(Equal(1))
		})
	},
		ContextTableEntry([]int{1, 2}),
		ContextTableEntry([]int{2, 3}).WithFmt("2 3"),
	)

	ContextTable("Given a file path %v",
		ContextTableEntry("found",
			"./table_test.go", nil,
		).WithFmt("./table_test.go"),
		ContextTableEntry("not found",
			filepath.Join(os.TempDir(), uuid.NewString()), os.ErrNotExist,
		).WithFmt("<random path>"),
		func(resultMsg string, path string, expectErr error) {
			var err error
			BeforeEach(func() {
				var file *os.File
				file, err = os.Open(path)
				if err == nil {
					file.Close()
				}
			})
			It(fmt.Sprintf("should be %s", resultMsg), func() {
				if expectErr == nil {
					Expect(err).To(Succeed())
				} else {
					Expect(err).To(MatchError(expectErr))
				}
			})
		})
})
