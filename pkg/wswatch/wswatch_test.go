// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wswatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	. "github.com/black-desk/lib/go/gomega-helper"
	"github.com/black-desk/wswatch/internal/tests/logger"
	. "github.com/black-desk/wswatch/pkg/wswatch"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sourcegraph/conc"
)

type runner func(ctx context.Context) error

func (r runner) Run(ctx context.Context) error {
	return r(ctx)
}

type closer struct {
	closed atomic.Bool
}

func (c *closer) Close() {
	c.closed.Store(true)
}

var blockUntilDone = runner(func(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
})

var _ = Describe("Daemon", func() {
	var (
		cfg *config.Config
		c   *closer
	)

	BeforeEach(func() {
		log, err := logger.ProvideLogger()
		Expect(err).To(Succeed())

		cfg, err = config.New(config.WithContent([]byte("version: 1\n")), config.WithLogger(log))
		Expect(err).To(Succeed())

		c = &closer{}
	})

	It("should run until cancelled", func() {
		d, err := New(
			WithConfig(cfg),
			WithManager(blockUntilDone),
			WithServer(blockUntilDone),
			WithCloser(c),
		)
		Expect(err).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		var (
			wg     conc.WaitGroup
			runErr error
		)
		wg.Go(func() { runErr = d.Run(ctx) })

		Consistently(c.closed.Load).Should(BeFalse())

		cancel()
		wg.Wait()

		Expect(runErr).To(MatchErr(context.Canceled))
		Expect(c.closed.Load()).To(BeTrue())
	})

	It("should stop everything when a component fails", func() {
		failure := errors.New("address already in use")

		d, err := New(
			WithConfig(cfg),
			WithManager(blockUntilDone),
			WithServer(runner(func(context.Context) error { return failure })),
			WithCloser(c),
		)
		Expect(err).To(Succeed())

		err = d.Run(context.Background())
		Expect(err).To(MatchErr(failure))
		Expect(c.closed.Load()).To(BeTrue())
	})

	It("should require its components", func() {
		_, err := New()
		Expect(err).To(MatchErr(ErrConfigMissing))

		_, err = New(WithConfig(cfg))
		Expect(err).To(MatchErr(ErrManagerMissing))

		_, err = New(WithConfig(cfg), WithManager(blockUntilDone))
		Expect(err).To(MatchErr(ErrServerMissing))

		_, err = New(WithLogger(nil))
		Expect(err).To(MatchErr(ErrLoggerMissing))
	})
})

func TestWSWatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Daemon Suite")
}
