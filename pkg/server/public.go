// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "run http server on %s", s.listen)

	var ln net.Listener
	ln, err = net.Listen("tcp", s.listen)
	if err != nil {
		return
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	s.log.Infow("Serving.", "address", ln.Addr().String())

	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	p.Go(func(ctx context.Context) error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx), shutdownTimeout,
		)
		defer cancel()

		s.log.Debugw("Shutting down http server.")

		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			return err
		}

		return ctx.Err()
	})

	err = p.Wait()
	return
}
